package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
)

func (c *client) GetCart(ctx context.Context) (apicarts.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("cart"), nil)
	if err != nil {
		return apicarts.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apicarts.Detail{}, err
	}
	defer resp.Body.Close()

	var cart apicarts.Detail
	if err := unmarshalJsonResponse(
		resp, &cart,
		MessageFor{
			Status4xx: "cannot fetch the cart",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apicarts.Detail{}, err
	}
	return cart, nil
}

func (c *client) AddCartItem(ctx context.Context, productId string, quantity int) (apicarts.Item, error) {
	b, err := json.Marshal(apicarts.ItemSpec{
		ProductId: productId, Quantity: quantity,
	})
	if err != nil {
		return apicarts.Item{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("cart", "items"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apicarts.Item{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apicarts.Item{}, err
	}
	defer resp.Body.Close()

	var item apicarts.Item
	if err := unmarshalJsonResponse(
		resp, &item,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot add product:%s to the cart", productId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apicarts.Item{}, err
	}
	return item, nil
}

func (c *client) UpdateCartItem(ctx context.Context, itemId string, quantity int) error {
	// quantity <= 0 means "this line should not exist".
	if quantity <= 0 {
		return c.RemoveCartItem(ctx, itemId)
	}

	b, err := json.Marshal(apicarts.QuantityChange{Quantity: quantity})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPut, c.apipath("cart", "items", itemId), bytes.NewBuffer(b),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("cart item:%s is not found", itemId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}

func (c *client) RemoveCartItem(ctx context.Context, itemId string) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("cart", "items", itemId), nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Removing an absent line is as good as removed.
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot remove cart item:%s", itemId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}

func (c *client) ClearCart(ctx context.Context) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("cart", "clear"), nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: "cannot clear the cart",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}
