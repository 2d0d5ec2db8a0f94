package catalog

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/imagecache"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/events"
)

// ProductManager gerencia o catálogo de produtos e suas imagens. A validação
// acontece antes de qualquer chamada de rede; uma entrada inválida nunca
// chega ao POS.
type ProductManager interface {
	List(ctx context.Context, search string, categoryID int) ([]domain.Product, error)
	Create(ctx context.Context, input domain.ProductInput) ([]domain.Product, error)
	Update(ctx context.Context, id int, input domain.ProductInput) ([]domain.Product, error)
	Delete(ctx context.Context, id int) ([]domain.Product, error)

	UploadImage(ctx context.Context, id int, filename, contentType string, file io.Reader) error
	Image(ctx context.Context, id int) (*domain.ProductImage, error)
	RemoveImage(ctx context.Context, id int) error
}

type ProductService struct {
	client posclient.Client
	images *imagecache.Cache
	bus    events.Publisher
}

func NewProductService(client posclient.Client, images *imagecache.Cache, bus events.Publisher) *ProductService {
	return &ProductService{
		client: client,
		images: images,
		bus:    bus,
	}
}

// List devolve os produtos, com filtro opcional por nome (case-insensitive) e
// por categoria.
func (s *ProductService) List(ctx context.Context, search string, categoryID int) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" && categoryID == 0 {
		return products, nil
	}

	search = strings.ToLower(search)
	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}
		if categoryID != 0 && product.CategoryID != categoryID {
			continue
		}
		filtered = append(filtered, product)
	}

	return filtered, nil
}

func (s *ProductService) Create(ctx context.Context, input domain.ProductInput) ([]domain.Product, error) {
	if err := validateProduct(&input); err != nil {
		return nil, err
	}

	if _, err := s.client.CreateProduct(ctx, input); err != nil {
		logrus.WithError(err).Error("catalog: failed to create product")
		return nil, err
	}

	return s.reload(ctx)
}

func (s *ProductService) Update(ctx context.Context, id int, input domain.ProductInput) ([]domain.Product, error) {
	if err := validateProduct(&input); err != nil {
		return nil, err
	}

	if _, err := s.client.UpdateProduct(ctx, id, input); err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": id,
			"error":      err.Error(),
		}).Error("catalog: failed to update product")
		return nil, err
	}

	return s.reload(ctx)
}

func (s *ProductService) Delete(ctx context.Context, id int) ([]domain.Product, error) {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": id,
			"error":      err.Error(),
		}).Error("catalog: failed to delete product")
		return nil, err
	}

	// A imagem local do produto excluído não tem mais dono.
	s.images.Remove(id)

	return s.reload(ctx)
}

// UploadImage envia a imagem ao POS e rebaixa a cópia fresca para o cache,
// substituindo (e liberando) a anterior.
func (s *ProductService) UploadImage(ctx context.Context, id int, filename, contentType string, file io.Reader) error {
	if err := s.client.UploadProductImage(ctx, id, filename, contentType, file); err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": id,
			"error":      err.Error(),
		}).Error("catalog: failed to upload product image")
		return err
	}

	fresh, err := s.client.FetchProductImage(ctx, id)
	if err != nil || fresh == nil {
		// O upload valeu; só a releitura falhou. A próxima consulta rebaixa.
		s.images.Remove(id)
		return nil
	}

	if err := s.images.Put(id, fresh.ContentType, fresh.Data); err != nil {
		logrus.WithError(err).WithField("product_id", id).
			Warn("catalog: failed to cache uploaded product image")
	}

	return nil
}

// Image devolve a imagem do produto, preferindo o cache local.
func (s *ProductService) Image(ctx context.Context, id int) (*domain.ProductImage, error) {
	if data, contentType, ok := s.images.Get(id); ok {
		return &domain.ProductImage{ProductID: id, ContentType: contentType, Data: data}, nil
	}

	fetched, err := s.client.FetchProductImage(ctx, id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": id,
			"error":      err.Error(),
		}).Error("catalog: failed to fetch product image")
		return nil, err
	}
	if fetched == nil {
		return nil, ErrImageNotFound
	}

	if err := s.images.Put(id, fetched.ContentType, fetched.Data); err != nil {
		logrus.WithError(err).WithField("product_id", id).
			Warn("catalog: failed to cache product image")
	}

	return fetched, nil
}

func (s *ProductService) RemoveImage(ctx context.Context, id int) error {
	if err := s.client.DeleteProductImage(ctx, id); err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": id,
			"error":      err.Error(),
		}).Error("catalog: failed to remove product image")
		return err
	}

	s.images.Remove(id)
	return nil
}

func (s *ProductService) reload(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		logrus.WithError(err).Error("catalog: failed to reload products after mutation")
		return nil, err
	}

	s.bus.Publish(events.EntityProduct)
	return products, nil
}

func validateProduct(input *domain.ProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Price <= 0 {
		return ErrInvalidPrice
	}
	if input.CategoryID == 0 {
		return ErrCategoryRequired
	}
	return nil
}
