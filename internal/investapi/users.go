package investapi

import (
	"context"
	"net/http"
)

// UpdateUserInput is the editable part of a profile.
type UpdateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUser fetches a user profile by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+id, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces the editable profile fields.
func (c *Client) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, "/users/"+id, input, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+id, nil, nil, true)
}

// UploadProfilePicture replaces the user's profile picture.
func (c *Client) UploadProfilePicture(ctx context.Context, userID string, picture Upload) error {
	return c.doMultipart(ctx, http.MethodPost, "/upload-profile-picture/"+userID, nil, &picture, nil, false)
}
