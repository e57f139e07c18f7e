package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
)

func (c *client) Register(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
	return c.postCredential(ctx, c.apipath("auth", "register"), username, password)
}

func (c *client) Login(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
	return c.postCredential(ctx, c.apipath("auth", "login"), username, password)
}

func (c *client) postCredential(ctx context.Context, url, username, password string) (apiusers.AuthResponse, error) {
	b, err := json.Marshal(apiusers.Credential{
		Username: username, Password: password,
	})
	if err != nil {
		return apiusers.AuthResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(b))
	if err != nil {
		return apiusers.AuthResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiusers.AuthResponse{}, err
	}
	defer resp.Body.Close()

	var auth apiusers.AuthResponse
	if err := unmarshalJsonResponse(
		resp, &auth,
		MessageFor{
			Status4xx: "credentials are rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiusers.AuthResponse{}, err
	}
	return auth, nil
}

func (c *client) CurrentUser(ctx context.Context) (apiusers.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("auth", "me"), nil)
	if err != nil {
		return apiusers.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiusers.Detail{}, err
	}
	defer resp.Body.Close()

	var user apiusers.Detail
	if err := unmarshalJsonResponse(
		resp, &user,
		MessageFor{
			Status4xx: "cannot resolve the current user",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiusers.Detail{}, err
	}
	return user, nil
}
