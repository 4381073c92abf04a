package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/learnhub/lmscli/types"
)

// ErrNoUpdatableFields is returned when a profile update filters down to
// nothing the backend would accept.
var ErrNoUpdatableFields = errors.New("no updatable fields in request")

// allowedProfileFields is the backend's allow-list for PATCH /users/{id}.
// Anything else is stripped before the request leaves the client.
var allowedProfileFields = map[string]struct{}{
	"bio":     {},
	"avatar":  {},
	"fname":   {},
	"lname":   {},
	"phone":   {},
	"address": {},
}

// AvatarUpload is an avatar binary attached to a profile update.
type AvatarUpload struct {
	Filename string
	Data     []byte
}

// ProfileUpdate carries the fields of a profile mutation. Fields outside
// the allow-list are dropped; a non-nil Avatar switches the request to
// multipart encoding.
type ProfileUpdate struct {
	Fields map[string]any
	Avatar *AvatarUpload
}

// FilterProfileFields returns only the entries of fields that the backend
// accepts on a profile update.
func FilterProfileFields(fields map[string]any) map[string]any {
	filtered := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, ok := allowedProfileFields[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (types.User, error) {
	var user types.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/profile", token, nil, &user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateUser patches the given user record. The payload is reduced to the
// allow-listed fields; when an avatar binary is present the request is sent
// as multipart form data instead of JSON.
func (c *Client) UpdateUser(ctx context.Context, token string, userID int, update ProfileUpdate) (types.User, error) {
	fields := FilterProfileFields(update.Fields)
	if len(fields) == 0 && update.Avatar == nil {
		return types.User{}, ErrNoUpdatableFields
	}

	path := fmt.Sprintf("/users/%d", userID)

	if update.Avatar == nil {
		var user types.User
		if err := c.doJSON(ctx, http.MethodPatch, path, token, fields, &user); err != nil {
			return types.User{}, err
		}
		return user, nil
	}
	return c.updateUserMultipart(ctx, token, path, fields, update.Avatar)
}

func (c *Client) updateUserMultipart(ctx context.Context, token, path string, fields map[string]any, avatar *AvatarUpload) (types.User, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		if err := writer.WriteField(key, fmt.Sprint(value)); err != nil {
			return types.User{}, fmt.Errorf("write field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile("avatar", avatar.Filename)
	if err != nil {
		return types.User{}, fmt.Errorf("create avatar part: %w", err)
	}
	if _, err := part.Write(avatar.Data); err != nil {
		return types.User{}, fmt.Errorf("write avatar part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return types.User{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPatch, path, &body)
	if err != nil {
		return types.User{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	var user types.User
	if err := c.do(req, &user); err != nil {
		return types.User{}, err
	}
	return user, nil
}
