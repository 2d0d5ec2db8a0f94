package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-admin-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-admin-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Categories expõe o CRUD de categorias. Leitura para qualquer usuário
// autenticado; mutações apenas para administradores.
func Categories(service catalog.CategoryManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/categories",
			Method:      http.MethodGet,
			Handler:     ListCategories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories",
			Method:      http.MethodPost,
			Handler:     CreateCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/categories/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/categories/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Products(service catalog.ProductManager, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id/image",
			Method:      http.MethodPost,
			Handler:     UploadProductImage(service, cfg.Images.MaxSizeByte),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products/:id/image",
			Method:      http.MethodGet,
			Handler:     GetProductImage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/image",
			Method:      http.MethodDelete,
			Handler:     DeleteProductImage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Reports expõe a geração, a exportação e os dados de filtro dos relatórios.
// A rota de opções fica fora de /v1/reports para não conflitar com o
// parâmetro :kind.
func Reports(service reporting.Reporter, options *reporting.OptionsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/:kind",
			Method:      http.MethodGet,
			Handler:     GenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/:kind/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/report-options",
			Method:      http.MethodGet,
			Handler:     ReportOptions(options),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
