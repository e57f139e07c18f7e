package rest

import (
	"context"
	"fmt"
	"net/http"

	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
)

func (c *client) CreateOrder(ctx context.Context) (apiorders.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apipath("orders"), nil)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var order apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &order,
		MessageFor{
			Status4xx: "cannot create an order",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return order, nil
}

func (c *client) FindOrders(ctx context.Context) ([]apiorders.Summary, error) {
	return c.findOrders(ctx, c.apipath("orders"))
}

func (c *client) GetOrder(ctx context.Context, orderId string) (apiorders.Detail, error) {
	return c.getOrder(ctx, c.apipath("orders", orderId), orderId)
}

func (c *client) FindAllOrders(ctx context.Context) ([]apiorders.Summary, error) {
	return c.findOrders(ctx, c.apipath("admin", "orders"))
}

func (c *client) GetAnyOrder(ctx context.Context, orderId string) (apiorders.Detail, error) {
	return c.getOrder(ctx, c.apipath("admin", "orders", orderId), orderId)
}

func (c *client) findOrders(ctx context.Context, url string) ([]apiorders.Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var found []apiorders.Summary
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: "cannot list orders",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) getOrder(ctx context.Context, url, orderId string) (apiorders.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var order apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &order,
		MessageFor{
			Status4xx: fmt.Sprintf("order:%s is not found", orderId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return order, nil
}
