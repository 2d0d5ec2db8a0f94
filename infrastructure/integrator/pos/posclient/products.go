package posclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

func (c *POSClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	endpoint, err := c.endpoint("/products/")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *POSClient) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	endpoint, err := c.endpoint("/products/")
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := c.doJSON(ctx, http.MethodPost, endpoint, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *POSClient) UpdateProduct(ctx context.Context, id int, input domain.ProductInput) (*domain.Product, error) {
	endpoint, err := c.endpoint("/products", strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := c.doJSON(ctx, http.MethodPut, endpoint, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *POSClient) DeleteProduct(ctx context.Context, id int) error {
	endpoint, err := c.endpoint("/products", strconv.Itoa(id))
	if err != nil {
		return err
	}

	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}
