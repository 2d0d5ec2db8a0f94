package posclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o acesso de baixo nível à API do núcleo do POS. Cada operação é
// uma chamada HTTP única, sem retry: falhas sobem para o chamador decidir.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	UploadProductImage(ctx context.Context, id int, filename, contentType string, file io.Reader) error
	FetchProductImage(ctx context.Context, id int) (*domain.ProductImage, error)
	DeleteProductImage(ctx context.Context, id int) error

	GetReport(ctx context.Context, kind domain.ReportKind, params map[string]string) ([]byte, error)
}

type POSClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do POS.
func NewClient(cfg *config.Config) Client {
	return &POSClient{
		httpClient: &http.Client{
			Timeout: cfg.POS.RequestTimeout,
		},
		config: cfg,
	}
}

type tokenContextKey struct{}

// WithToken devolve um contexto que carrega o token de acesso do POS a ser
// usado nas chamadas em nome de um usuário. Sem ele, vale o token de serviço.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func (c *POSClient) tokenFrom(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok && token != "" {
		return token
	}
	return c.config.POS.ServiceToken
}

// endpoint monta a URL de um recurso relativo à base configurada do POS.
func (c *POSClient) endpoint(parts ...string) (*url.URL, error) {
	endpoint, err := url.Parse(c.config.POS.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	endpoint.Path = path.Join(append([]string{endpoint.Path}, parts...)...)

	// path.Join descarta a barra final, mas o núcleo do POS a exige nas
	// rotas de coleção.
	if last := parts[len(parts)-1]; strings.HasSuffix(last, "/") {
		endpoint.Path += "/"
	}

	return endpoint, nil
}

// doJSON executa uma requisição com corpo/resposta JSON. out pode ser nil
// quando a resposta não interessa.
func (c *POSClient) doJSON(ctx context.Context, method string, endpoint *url.URL, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.tokenFrom(ctx))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Path: endpoint.Path}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// StatusError indica uma resposta não-2xx do núcleo do POS.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição a %s falhou com status %d", e.Path, e.Status)
}

// IsNotFound informa se err é uma resposta 404 do POS.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}
