package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient/mocks"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/events"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	bus := events.NewBus()

	published := 0
	bus.Subscribe(events.EntityCategory, func(events.Entity) { published++ })

	service := NewCategoryService(client, bus)

	input := domain.CategoryInput{Name: "Bebidas", IsActive: boolPtr(true)}
	reloaded := []domain.Category{{ID: 1, Name: "Bebidas"}}

	// Um save válido dispara exatamente uma criação e uma releitura
	client.EXPECT().CreateCategory(gomock.Any(), input).Return(&domain.Category{ID: 1}, nil)
	client.EXPECT().ListCategories(gomock.Any(), false).Return(reloaded, nil)

	categories, err := service.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, reloaded, categories)
	assert.Equal(t, 1, published)
}

func TestCategoryService_Create_RejectsBlankNameBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao POS é esperada
	client := mocks.NewMockClient(ctrl)
	service := NewCategoryService(client, events.NewBus())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := service.Create(context.Background(), domain.CategoryInput{Name: name})
		assert.ErrorIs(t, err, ErrNameRequired)
	}
}

func TestCategoryService_Update_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := NewCategoryService(client, events.NewBus())

	trimmed := domain.CategoryInput{Name: "Sobremesas"}

	client.EXPECT().UpdateCategory(gomock.Any(), 7, trimmed).Return(&domain.Category{ID: 7}, nil)
	client.EXPECT().ListCategories(gomock.Any(), false).Return([]domain.Category{}, nil)

	_, err := service.Update(context.Background(), 7, domain.CategoryInput{Name: "  Sobremesas  "})
	assert.NoError(t, err)
}

func TestCategoryService_Delete_PublishesAfterReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	bus := events.NewBus()

	var notified []events.Entity
	bus.Subscribe(events.EntityCategory, func(entity events.Entity) {
		notified = append(notified, entity)
	})

	service := NewCategoryService(client, bus)

	client.EXPECT().DeleteCategory(gomock.Any(), 3).Return(nil)
	client.EXPECT().ListCategories(gomock.Any(), false).Return([]domain.Category{}, nil)

	_, err := service.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []events.Entity{events.EntityCategory}, notified)
}

func boolPtr(b bool) *bool { return &b }
