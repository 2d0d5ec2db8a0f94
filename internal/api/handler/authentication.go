package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-admin-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-admin-api/pkg/middleware"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Username == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios", nil)
			return
		}

		result, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authenticating.ErrInvalidCredentials) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
				return
			}

			logrus.WithError(err).Error("login: unexpected failure")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("login: failed to encode response")
		}
	})
}

// GetMe retorna as informações do usuário logado a partir do token
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(domain.User{
			Username: userClaims.Username,
			Role:     userClaims.Role,
		})
		if err != nil {
			logrus.WithError(err).Error("me: failed to encode response")
		}
	})
}
