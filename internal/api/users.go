package api

import (
	"context"
	"net/url"

	"github.com/lablog-io/lablog/internal/models"
)

type userList struct {
	Users []models.UserAccount `json:"users"`
}

// SearchUsers looks up user accounts matching the query string. Used for
// author suggestions while typing; callers are expected to debounce.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.UserAccount, error) {
	q := url.Values{}
	q.Set("search", query)

	var list userList
	if err := c.getJSON(ctx, "/api/users/", q, &list); err != nil {
		return nil, err
	}
	return list.Users, nil
}
