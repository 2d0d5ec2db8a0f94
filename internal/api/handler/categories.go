package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog"
	"github.com/vfg2006/restaurant-admin-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-admin-api/pkg/log"
)

func ListCategories(service catalog.CategoryManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		activeOnly := r.URL.Query().Get("active_only") == "true"

		categories, err := service.List(r.Context(), activeOnly)
		if err != nil {
			logger.WithError(err).Error("categories: failed to list categories")
			apiErrors.WriteError(w, apiErrors.ErrCategoryOperation, "Erro ao listar categorias", nil)
			return
		}

		writeJSON(w, logger, categories)
	})
}

func CreateCategory(service catalog.CategoryManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.CategoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		categories, err := service.Create(r.Context(), input)
		if err != nil {
			writeCatalogError(w, logger, err, apiErrors.ErrCategoryOperation, "Erro ao criar categoria")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(categories); err != nil {
			logger.WithError(err).Error("categories: failed to encode response")
		}
	})
}

func UpdateCategory(service catalog.CategoryManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var input domain.CategoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		categories, err := service.Update(r.Context(), id, input)
		if err != nil {
			writeCatalogError(w, logger, err, apiErrors.ErrCategoryOperation, "Erro ao atualizar categoria")
			return
		}

		writeJSON(w, logger, categories)
	})
}

// DeleteCategory exige confirmação explícita: sem confirm=true na query a
// exclusão não chega ao POS.
func DeleteCategory(service catalog.CategoryManager) http.Handler {
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

		categories, err := service.Delete(r.Context(), id)
		if err != nil {
			writeCatalogError(w, logger, err, apiErrors.ErrCategoryOperation, "Erro ao excluir categoria")
			return
		}

		writeJSON(w, logger, categories)
	})
}

// pathID extrai e valida o parâmetro :id da rota.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID inválido", nil)
		return 0, false
	}

	return id, true
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
	}
}

// writeCatalogError separa erros de validação (rejeitados antes da rede) dos
// erros vindos do núcleo do POS.
func writeCatalogError(w http.ResponseWriter, logger log.Logger, err error, code, message string) {
	switch {
	case errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrCategoryRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error("catalog: operation failed")
		apiErrors.WriteError(w, code, message, nil)
	}
}
