package posclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

func (c *POSClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	endpoint, err := c.endpoint("/users/")
	if err != nil {
		return nil, err
	}

	var users []domain.User
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *POSClient) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	endpoint, err := c.endpoint("/users", username)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
