package investapi

import (
	"context"
	"net/http"
)

// AuthToken is the credential returned by a successful sign-in.
type AuthToken struct {
	AccessToken string `json:"access_token"`
}

// SignUpInput is the registration payload. Picture is optional.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Picture  *Upload
}

// SignIn exchanges credentials for an access token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthToken, error) {
	payload := map[string]string{"email": email, "password": password}
	var token AuthToken
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signin", payload, &token, false); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "Token não encontrado na resposta"}
	}
	return &token, nil
}

// SignUp registers a new user. The request is multipart because of the
// optional profile picture.
func (c *Client) SignUp(ctx context.Context, input SignUpInput) (*User, error) {
	fields := map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	}
	var user User
	if err := c.doMultipart(ctx, http.MethodPost, "/auth/signup", fields, input.Picture, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword sets a new password for the signed-in user.
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	payload := map[string]string{"newPassword": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/change-password", payload, nil, true)
}
