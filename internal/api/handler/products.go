package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog"
	"github.com/vfg2006/restaurant-admin-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-admin-api/pkg/log"
)

func ListProducts(service catalog.ProductManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		search := r.URL.Query().Get("search")

		categoryID := 0
		if raw := r.URL.Query().Get("category_id"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "category_id inválido", nil)
				return
			}
			categoryID = parsed
		}

		products, err := service.List(r.Context(), search, categoryID)
		if err != nil {
			logger.WithError(err).Error("products: failed to list products")
			apiErrors.WriteError(w, apiErrors.ErrProductOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, logger, products)
	})
}

func CreateProduct(service catalog.ProductManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		products, err := service.Create(r.Context(), input)
		if err != nil {
			writeCatalogError(w, logger, err, apiErrors.ErrProductOperation, "Erro ao criar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("products: failed to encode response")
		}
	})
}

func UpdateProduct(service catalog.ProductManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var input domain.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		products, err := service.Update(r.Context(), id, input)
		if err != nil {
			writeCatalogError(w, logger, err, apiErrors.ErrProductOperation, "Erro ao atualizar produto")
			return
		}

		writeJSON(w, logger, products)
	})
}

// DeleteProduct segue a mesma regra de confirmação explícita das categorias.
func DeleteProduct(service catalog.ProductManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if r.URL.Query().Get("confirm") != "true" {
			apiErrors.WriteError(w, apiErrors.ErrConfirmationNeeded,
				"Exclusão exige confirmação explícita (confirm=true)", nil)
			return
		}

		products, err := service.Delete(r.Context(), id)
		if err != nil {
			writeCatalogError(w, logger, err, apiErrors.ErrProductOperation, "Erro ao excluir produto")
			return
		}

		writeJSON(w, logger, products)
	})
}
