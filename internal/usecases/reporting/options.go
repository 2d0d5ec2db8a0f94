package reporting

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/events"
)

// CatalogLister é o que o carregador de filtros precisa do cliente POS.
type CatalogLister interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// FilterOptions são os dados que alimentam os seletores de filtro do painel.
type FilterOptions struct {
	Categories     []domain.Category `json:"categories"`
	Products       []domain.Product  `json:"products"`
	Waiters        []domain.User     `json:"waiters"`
	PaymentMethods []string          `json:"payment_methods"`
}

// Métodos de pagamento aceitos pelo núcleo do POS.
var paymentMethodOptions = []string{"cash", "debit", "credit", "pix", "other"}

// OptionsService carrega categorias, produtos e usuários em paralelo para
// montar os filtros. Falha em uma das buscas degrada para lista vazia em vez
// de derrubar o painel. O resultado fica em cache até uma mutação de catálogo
// invalidar via barramento de eventos.
type OptionsService struct {
	client CatalogLister

	mu     sync.Mutex
	cached *FilterOptions
}

func NewOptionsService(client CatalogLister, bus *events.Bus) *OptionsService {
	s := &OptionsService{client: client}

	invalidate := func(events.Entity) { s.Invalidate() }
	bus.Subscribe(events.EntityCategory, invalidate)
	bus.Subscribe(events.EntityProduct, invalidate)

	return s
}

func (s *OptionsService) Load(ctx context.Context) *FilterOptions {
	s.mu.Lock()
	if s.cached != nil {
		cached := s.cached
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	options := &FilterOptions{
		Categories:     []domain.Category{},
		Products:       []domain.Product{},
		Waiters:        []domain.User{},
		PaymentMethods: paymentMethodOptions,
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		categories, err := s.client.ListCategories(ctx, true)
		if err != nil {
			logrus.WithError(err).Warn("reports: failed to load categories for filters")
			return
		}
		options.Categories = categories
	}()

	go func() {
		defer wg.Done()
		products, err := s.client.ListProducts(ctx)
		if err != nil {
			logrus.WithError(err).Warn("reports: failed to load products for filters")
			return
		}
		options.Products = products
	}()

	go func() {
		defer wg.Done()
		users, err := s.client.ListUsers(ctx)
		if err != nil {
			logrus.WithError(err).Warn("reports: failed to load users for filters")
			return
		}
		options.Waiters = filterWaiters(users)
	}()

	wg.Wait()

	s.mu.Lock()
	s.cached = options
	s.mu.Unlock()

	return options
}

// Invalidate descarta o cache; a próxima chamada a Load recarrega tudo.
func (s *OptionsService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func filterWaiters(users []domain.User) []domain.User {
	waiters := make([]domain.User, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Role), "wait") {
			waiters = append(waiters, user)
		}
	}
	return waiters
}
