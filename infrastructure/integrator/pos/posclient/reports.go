package posclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

// GetReport consulta um dos endpoints de relatório do núcleo do POS e devolve
// o payload cru. daily-sales e hourly-sales embutem a data no caminho, além
// de receberem os parâmetros completos na query.
func (c *POSClient) GetReport(ctx context.Context, kind domain.ReportKind, params map[string]string) ([]byte, error) {
	parts := []string{"/reports", string(kind)}
	if kind.UsesSingleDate() {
		parts = append(parts, params["date"])
	}

	endpoint, err := c.endpoint(parts...)
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	for key, value := range params {
		query.Set(key, value)
	}
	endpoint.RawQuery = query.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.config.POS.ReportTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tokenFrom(ctx))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Path: endpoint.Path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return body, nil
}
