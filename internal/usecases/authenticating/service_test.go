package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient/mocks"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:   "test-secret",
			TokenTTL: time.Hour,
		},
	}
}

func TestService_Login_IssuesValidatableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := NewService(client, testConfig())

	client.EXPECT().Login(gomock.Any(), "admin", "secret").Return("pos-token", nil)
	client.EXPECT().GetUserByUsername(gomock.Any(), "admin").
		Return(&domain.User{ID: 1, Username: "admin", Role: domain.RoleAdministrator}, nil)

	result, err := service.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.User.Username)

	// O token emitido valida no próprio serviço e carrega o token do POS
	claims, err := service.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdministrator, claims.Role)
	assert.Equal(t, "pos-token", claims.POSToken)
	assert.True(t, claims.IsAdministrator())
}

func TestService_Login_RejectedByPOS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := NewService(client, testConfig())

	client.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return("", errors.New("401"))

	_, err := service.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := NewService(client, testConfig())

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token emitido com outro segredo também é rejeitado
	other := NewService(client, &config.Config{
		Auth: config.Auth{Secret: "other-secret", TokenTTL: time.Hour},
	})

	client.EXPECT().Login(gomock.Any(), "admin", "secret").Return("pos-token", nil)
	client.EXPECT().GetUserByUsername(gomock.Any(), "admin").
		Return(&domain.User{Username: "admin", Role: domain.RoleWaiter}, nil)

	result, err := other.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	_, err = service.ValidateToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
