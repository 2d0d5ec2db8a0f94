package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog"
	"github.com/vfg2006/restaurant-admin-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-admin-api/pkg/log"
)

// UploadProductImage recebe um multipart/form-data com o campo "file" e
// repassa o conteúdo ao POS em streaming.
func UploadProductImage(service catalog.ProductManager, maxSizeBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxSizeBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Arquivo ausente ou maior que o limite permitido", nil)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if err := service.UploadImage(r.Context(), id, header.Filename, contentType, file); err != nil {
			logger.WithError(err).WithField("product_id", id).
				Error("images: failed to upload product image")
			apiErrors.WriteError(w, apiErrors.ErrImageOperation, "Erro ao enviar imagem", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetProductImage(service catalog.ProductManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		image, err := service.Image(r.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrImageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrImageNotFound, "Produto sem imagem", nil)
				return
			}

			logger.WithError(err).WithField("product_id", id).
				Error("images: failed to fetch product image")
			apiErrors.WriteError(w, apiErrors.ErrImageOperation, "Erro ao buscar imagem", nil)
			return
		}

		w.Header().Set("Content-Type", image.ContentType)
		if _, err := w.Write(image.Data); err != nil {
			logger.WithError(err).Warn("images: failed to write image response")
		}
	})
}

func DeleteProductImage(service catalog.ProductManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.RemoveImage(r.Context(), id); err != nil {
			logger.WithError(err).WithField("product_id", id).
				Error("images: failed to remove product image")
			apiErrors.WriteError(w, apiErrors.ErrImageOperation, "Erro ao remover imagem", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
