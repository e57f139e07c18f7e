package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	apiadmin "github.com/echo-commerce/echo-commerce/api/types/admin"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
)

func (c *client) GetStats(ctx context.Context) (apiadmin.Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("admin", "stats"), nil)
	if err != nil {
		return apiadmin.Stats{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiadmin.Stats{}, err
	}
	defer resp.Body.Close()

	var stats apiadmin.Stats
	if err := unmarshalJsonResponse(
		resp, &stats,
		MessageFor{
			Status4xx: "cannot fetch statistics",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiadmin.Stats{}, err
	}
	return stats, nil
}

func (c *client) FindUsers(ctx context.Context, skip, limit int) ([]apiusers.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("admin", "users"), nil)
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

	var found []apiusers.Detail
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: "cannot list users",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) SetUserAdmin(ctx context.Context, userId string, isAdmin bool) (apiusers.Detail, error) {
	b, err := json.Marshal(apiadmin.AdminFlagChange{IsAdmin: isAdmin})
	if err != nil {
		return apiusers.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPut, c.apipath("admin", "users", userId, "admin"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apiusers.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiusers.Detail{}, err
	}
	defer resp.Body.Close()

	var user apiusers.Detail
	if err := unmarshalJsonResponse(
		resp, &user,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot change the admin flag of user:%s", userId),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiusers.Detail{}, err
	}
	return user, nil
}
