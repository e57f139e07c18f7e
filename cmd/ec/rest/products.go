package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
)

func (c *client) FindProducts(ctx context.Context, skip, limit int) ([]apiproducts.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("products"), nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if 0 < skip {
		q.Add("skip", strconv.Itoa(skip))
	}
	if 0 < limit {
		q.Add("limit", strconv.Itoa(limit))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var found []apiproducts.Detail
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: "cannot list products",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) GetProduct(ctx context.Context, productId string) (apiproducts.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("products", productId), nil)
	if err != nil {
		return apiproducts.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiproducts.Detail{}, err
	}
	defer resp.Body.Close()

	var product apiproducts.Detail
	if err := unmarshalJsonResponse(
		resp, &product,
		MessageFor{
			Status4xx: fmt.Sprintf("product:%s is not found", productId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiproducts.Detail{}, err
	}
	return product, nil
}

func (c *client) RegisterProduct(ctx context.Context, spec apiproducts.Spec) (apiproducts.Detail, error) {
	return c.sendProductSpec(ctx, http.MethodPost, c.apipath("products"), spec)
}

func (c *client) UpdateProduct(ctx context.Context, productId string, spec apiproducts.Spec) (apiproducts.Detail, error) {
	return c.sendProductSpec(ctx, http.MethodPut, c.apipath("products", productId), spec)
}

func (c *client) sendProductSpec(ctx context.Context, method, url string, spec apiproducts.Spec) (apiproducts.Detail, error) {
	b, err := json.Marshal(spec)
	if err != nil {
		return apiproducts.Detail{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(b))
	if err != nil {
		return apiproducts.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiproducts.Detail{}, err
	}
	defer resp.Body.Close()

	var product apiproducts.Detail
	if err := unmarshalJsonResponse(
		resp, &product,
		MessageFor{
			Status4xx: "invalid product spec",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiproducts.Detail{}, err
	}
	return product, nil
}

func (c *client) DeleteProduct(ctx context.Context, productId string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apipath("products", productId), nil)
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
			Status4xx: fmt.Sprintf("product:%s is not found", productId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}
