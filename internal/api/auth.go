package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// LoginRequest is the credential payload for the auth endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Login exchanges credentials for a bearer token. A response that signals
// an error or omits the token is surfaced as an error; the caller decides
// what to do with session state.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", errors.New(resp.Error)
	}
	if resp.Message != "" && resp.Token == "" {
		return "", errors.New(resp.Message)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return resp.Token, nil
}
