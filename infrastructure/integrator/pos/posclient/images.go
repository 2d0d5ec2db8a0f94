package posclient

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

// UploadProductImage envia o arquivo como multipart/form-data no campo
// "file", conforme o contrato do núcleo do POS.
func (c *POSClient) UploadProductImage(ctx context.Context, id int, filename, contentType string, file io.Reader) error {
	endpoint, err := c.endpoint("/products", strconv.Itoa(id), "upload_image")
	if err != nil {
		return err
	}

	reader, writer := io.Pipe()
	form := multipart.NewWriter(writer)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			writer.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			writer.CloseWithError(err)
			return
		}
		writer.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tokenFrom(ctx))
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Path: endpoint.Path}
	}

	return nil
}

// FetchProductImage baixa a imagem binária do produto. Devolve nil sem erro
// quando o produto não possui imagem (404).
func (c *POSClient) FetchProductImage(ctx context.Context, id int) (*domain.ProductImage, error) {
	endpoint, err := c.endpoint("/products", strconv.Itoa(id), "image")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tokenFrom(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Path: endpoint.Path}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.config.Images.MaxSizeByte))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a imagem: %w", err)
	}

	return &domain.ProductImage{
		ProductID:   id,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (c *POSClient) DeleteProductImage(ctx context.Context, id int) error {
	endpoint, err := c.endpoint("/products", strconv.Itoa(id), "image")
	if err != nil {
		return err
	}

	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}
