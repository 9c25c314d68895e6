package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	Token string           `json:"token"`
	User  models.Principal `json:"user"`
}

type meData struct {
	User models.Principal `json:"user"`
}

// Login exchanges credentials for a token. It does not look at the role;
// deciding who may hold a session is the session store's job.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, models.Principal, error) {
	var data loginData
	req := loginRequest{Email: email, Password: string(password)}
	if err := c.call(ctx, http.MethodPost, "/auth/login", nil, req, false, &data); err != nil {
		return "", models.Principal{}, fmt.Errorf("login: %w", err)
	}
	return data.Token, data.User, nil
}

// Me returns the principal owning the current token.
func (c *HTTPClient) Me(ctx context.Context) (models.Principal, error) {
	var data meData
	if err := c.call(ctx, http.MethodGet, "/auth/me", nil, nil, true, &data); err != nil {
		return models.Principal{}, fmt.Errorf("profile: %w", err)
	}
	return data.User, nil
}
