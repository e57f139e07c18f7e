package users

import (
	"github.com/echo-commerce/echo-commerce/api/types/misc/rfctime"
)

// Detail is a user record as the backend exposes it.
type Detail struct {
	Id        string          `json:"id"`
	Username  string          `json:"username"`
	IsAdmin   bool            `json:"is_admin"`
	CreatedAt rfctime.RFC3339 `json:"created_at"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Username == o.Username &&
		d.IsAdmin == o.IsAdmin &&
		d.CreatedAt.Equal(o.CreatedAt)
}

// Credential is the request body of login/register.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the response of login/register: a bearer token paired
// with the user it authenticates.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        Detail `json:"user"`
}

func (a AuthResponse) Equal(o AuthResponse) bool {
	return a.AccessToken == o.AccessToken &&
		a.TokenType == o.TokenType &&
		a.User.Equal(o.User)
}
