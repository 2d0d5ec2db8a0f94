package catalog

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/events"
)

// CategoryManager gerencia o catálogo de categorias. Toda mutação bem
// sucedida recarrega a lista no POS e publica a mudança no barramento.
type CategoryManager interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	Create(ctx context.Context, input domain.CategoryInput) ([]domain.Category, error)
	Update(ctx context.Context, id int, input domain.CategoryInput) ([]domain.Category, error)
	Delete(ctx context.Context, id int) ([]domain.Category, error)
}

type CategoryService struct {
	client posclient.Client
	bus    events.Publisher
}

func NewCategoryService(client posclient.Client, bus events.Publisher) *CategoryService {
	return &CategoryService{
		client: client,
		bus:    bus,
	}
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return s.client.ListCategories(ctx, activeOnly)
}

func (s *CategoryService) Create(ctx context.Context, input domain.CategoryInput) ([]domain.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.client.CreateCategory(ctx, input); err != nil {
		logrus.WithError(err).Error("catalog: failed to create category")
		return nil, err
	}

	return s.reload(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id int, input domain.CategoryInput) ([]domain.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.client.UpdateCategory(ctx, id, input); err != nil {
		logrus.WithFields(logrus.Fields{
			"category_id": id,
			"error":       err.Error(),
		}).Error("catalog: failed to update category")
		return nil, err
	}

	return s.reload(ctx)
}

func (s *CategoryService) Delete(ctx context.Context, id int) ([]domain.Category, error) {
	if err := s.client.DeleteCategory(ctx, id); err != nil {
		logrus.WithFields(logrus.Fields{
			"category_id": id,
			"error":       err.Error(),
		}).Error("catalog: failed to delete category")
		return nil, err
	}

	return s.reload(ctx)
}

func (s *CategoryService) reload(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.client.ListCategories(ctx, false)
	if err != nil {
		// A mutação já aconteceu; falha só na releitura.
		logrus.WithError(err).Error("catalog: failed to reload categories after mutation")
		return nil, err
	}

	s.bus.Publish(events.EntityCategory)
	return categories, nil
}
