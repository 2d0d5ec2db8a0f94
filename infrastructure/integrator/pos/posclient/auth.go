package posclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login autentica no núcleo do POS e devolve o token de acesso emitido por
// ele. As credenciais não são registradas nem persistidas aqui.
func (c *POSClient) Login(ctx context.Context, username, password string) (string, error) {
	endpoint, err := c.endpoint("/login/")
	if err != nil {
		return "", err
	}

	// O núcleo do POS espera credenciais no formato de formulário.
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Status: resp.StatusCode, Path: endpoint.Path}
	}

	var response loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.AccessToken, nil
}
