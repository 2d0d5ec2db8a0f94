package authenticating

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
)

// Authenticator autentica administradores do gateway. As credenciais são
// repassadas ao núcleo do POS; o gateway não guarda senha nem hash. O JWT
// emitido aqui carrega o token do POS para repasse nas chamadas seguintes.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type Service struct {
	client posclient.Client
	cfg    *config.Config
}

func NewService(client posclient.Client, cfg *config.Config) Authenticator {
	return &Service{
		client: client,
		cfg:    cfg,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	posToken, err := s.client.Login(ctx, username, password)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Warn("auth: login rejected by POS core")
		return nil, ErrInvalidCredentials
	}

	user, err := s.client.GetUserByUsername(posclient.WithToken(ctx, posToken), username)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Error("auth: failed to fetch user profile after login")
		return nil, err
	}

	now := time.Now()
	claims := &domain.Claims{
		Username: user.Username,
		Role:     user.Role,
		POSToken: posToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		logrus.WithError(err).Error("auth: failed to sign gateway token")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("auth: user logged in")

	return &LoginResult{Token: token, User: *user}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.client.ListUsers(ctx)
}
