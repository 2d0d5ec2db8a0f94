package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-admin-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-admin-api/pkg/log"
)

func ListUsers(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		users, err := service.ListUsers(r.Context())
		if err != nil {
			logger.WithError(err).Error("users: failed to list users from POS core")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logger.WithError(err).Error("users: failed to encode response")
		}
	})
}
