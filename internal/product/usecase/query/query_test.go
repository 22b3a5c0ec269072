package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

// stubRepo serves a fixed product set and counts heal writes
type stubRepo struct {
	domain.ProductRepository

	mu       sync.Mutex
	products []domain.Product
	heals    int
	healErr  error
	filter   domain.ListFilter
}

func (s *stubRepo) snapshot() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *stubRepo) FindAll(_ context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	return s.snapshot(), nil
}

func (s *stubRepo) Search(context.Context, string) ([]domain.Product, error) {
	return s.snapshot(), nil
}

func (s *stubRepo) FindLowStock(context.Context) ([]domain.Product, error) {
	return s.snapshot(), nil
}

func (s *stubRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.snapshot() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubRepo) HealStatus(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heals++
	if s.healErr != nil {
		return s.healErr
	}
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i].Status = p.Status
		}
	}
	return nil
}

func (s *stubRepo) healCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heals
}

// inlinePool runs tasks on Submit, or rejects them when full is set
type inlinePool struct {
	full      bool
	submitted int
}

func (p *inlinePool) Submit(ctx context.Context, _ string, task worker.Task) bool {
	if p.full {
		return false
	}
	p.submitted++
	_ = task(ctx)
	return true
}

func drifted() []domain.Product {
	return []domain.Product{
		{ID: "a", Name: "A", Quantity: 0, ReorderLevel: 10, Status: domain.StatusInStock},
		{ID: "b", Name: "B", Quantity: 5, ReorderLevel: 10, Status: domain.StatusLowStock},
		{ID: "c", Name: "C", Quantity: 50, ReorderLevel: 10, Status: domain.StatusLowStock},
	}
}

func TestListReturnsCorrectedStatusAndHealsInBackground(t *testing.T) {
	repo := &stubRepo{products: drifted()}
	pool := &inlinePool{}
	reg := prometheus.NewRegistry()
	m := metrics.NewInventory(reg)
	h := NewListProductsHandler(repo, NewReconciler(repo, pool, m))

	products, err := h.Handle(context.Background(), ListProductsQuery{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutOfStock, products[0].Status)
	assert.Equal(t, domain.StatusLowStock, products[1].Status)
	assert.Equal(t, domain.StatusInStock, products[2].Status)
	assert.Equal(t, 2, pool.submitted)
	assert.Equal(t, 2, repo.healCount())

	count, err := testutil.GatherAndCount(reg, "inventory_status_heals_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Second read over a consistent set: nothing is written.
	_, err = h.Handle(context.Background(), ListProductsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, pool.submitted)
	assert.Equal(t, 2, repo.healCount())
}

func TestListStillCorrectsWhenQueueIsFull(t *testing.T) {
	repo := &stubRepo{products: drifted()}
	h := NewListProductsHandler(repo, NewReconciler(repo, &inlinePool{full: true}, nil))

	products, err := h.Handle(context.Background(), ListProductsQuery{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutOfStock, products[0].Status)
	assert.Equal(t, 0, repo.healCount())
}

func TestListStatusFilter(t *testing.T) {
	repo := &stubRepo{}
	h := NewListProductsHandler(repo, NewReconciler(repo, &inlinePool{}, nil))

	_, err := h.Handle(context.Background(), ListProductsQuery{Status: "low stock", Category: " Tools "})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLowStock, repo.filter.Status)
	assert.Equal(t, "Tools", repo.filter.Category)

	_, err = h.Handle(context.Background(), ListProductsQuery{Status: "plenty"})
	assert.True(t, apperror.IsValidation(err))
}

func TestGetAwaitsHeal(t *testing.T) {
	repo := &stubRepo{products: drifted()}
	pool := &inlinePool{}
	h := NewGetProductHandler(repo, NewReconciler(repo, pool, nil))

	p, err := h.Handle(context.Background(), GetProductQuery{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOutOfStock, p.Status)
	assert.Equal(t, 1, repo.healCount())
	assert.Equal(t, 0, pool.submitted)

	stored, _ := repo.FindByID(context.Background(), "a")
	assert.Equal(t, domain.StatusOutOfStock, stored.Status)

	// Already consistent.
	_, err = h.Handle(context.Background(), GetProductQuery{ID: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.healCount())
}

func TestGetSurfacesHealFailure(t *testing.T) {
	repo := &stubRepo{products: drifted(), healErr: errors.New("connection reset")}
	h := NewGetProductHandler(repo, NewReconciler(repo, &inlinePool{}, nil))

	_, err := h.Handle(context.Background(), GetProductQuery{ID: "a"})
	require.Error(t, err)
	assert.Equal(t, 500, apperror.StatusCode(err))

	_, err = h.Handle(context.Background(), GetProductQuery{ID: "missing"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestSearchRequiresTerm(t *testing.T) {
	repo := &stubRepo{products: drifted()}
	h := NewSearchProductsHandler(repo, NewReconciler(repo, &inlinePool{}, nil))

	_, err := h.Handle(context.Background(), SearchProductsQuery{Term: "   "})
	assert.True(t, apperror.IsValidation(err))

	products, err := h.Handle(context.Background(), SearchProductsQuery{Term: "a"})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestLowStockReconciles(t *testing.T) {
	repo := &stubRepo{products: drifted()[:2]}
	h := NewLowStockHandler(repo, NewReconciler(repo, &inlinePool{}, nil))

	products, err := h.Handle(context.Background())
	require.NoError(t, err)
	for _, p := range products {
		assert.True(t, p.Status.NeedsReorder())
	}
	assert.Equal(t, 1, repo.healCount())
}

func TestReconcileIsIdempotent(t *testing.T) {
	repo := &stubRepo{}
	pool := &inlinePool{}
	r := NewReconciler(repo, pool, nil)

	products := drifted()
	assert.Equal(t, 2, r.ReconcileAll(context.Background(), products))
	before := append([]domain.Product(nil), products...)
	assert.Equal(t, 0, r.ReconcileAll(context.Background(), products))
	assert.Equal(t, before, products)
}
