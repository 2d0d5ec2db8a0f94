package posclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

func (c *POSClient) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	endpoint, err := c.endpoint("/categories/")
	if err != nil {
		return nil, err
	}

	if activeOnly {
		query := endpoint.Query()
		query.Set("active_only", "true")
		endpoint.RawQuery = query.Encode()
	}

	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *POSClient) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	endpoint, err := c.endpoint("/categories/")
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPost, endpoint, input, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (c *POSClient) UpdateCategory(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error) {
	endpoint, err := c.endpoint("/categories", strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPatch, endpoint, input, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (c *POSClient) DeleteCategory(ctx context.Context, id int) error {
	endpoint, err := c.endpoint("/categories", strconv.Itoa(id))
	if err != nil {
		return err
	}

	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}
