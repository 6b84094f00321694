package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

type supplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]*domain.Supplier
	order     []string
	logger    *zap.Logger
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository(logger *zap.Logger) *supplierRepository {
	return &supplierRepository{
		suppliers: make(map[string]*domain.Supplier),
		logger:    logger,
	}
}

func (r *supplierRepository) List(ctx context.Context) ([]*domain.Supplier, error) {
	return r.list(func(*domain.Supplier) bool { return true }), nil
}

func (r *supplierRepository) ListActive(ctx context.Context) ([]*domain.Supplier, error) {
	return r.list(func(s *domain.Supplier) bool { return s.IsActive }), nil
}

func (r *supplierRepository) list(keep func(*domain.Supplier) bool) []*domain.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]*domain.Supplier, 0, len(r.order))
	for _, id := range r.order {
		s := r.suppliers[id]
		if !keep(s) {
			continue
		}
		cp := *s
		suppliers = append(suppliers, &cp)
	}
	return suppliers
}

func (r *supplierRepository) Add(ctx context.Context, in domain.NewSupplier) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		ID:              uuid.New().String(),
		Name:            in.Name,
		APIKey:          in.APIKey,
		BaseURL:         in.BaseURL,
		Country:         in.Country,
		ShippingCost:    in.ShippingCost,
		AvgDeliveryDays: in.AvgDeliveryDays,
		IsActive:        true,
	}

	// Defaulting rules for optional fields
	if supplier.ShippingCost == "" {
		supplier.ShippingCost = "0"
	}
	if supplier.AvgDeliveryDays == 0 {
		supplier.AvgDeliveryDays = 7
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}

	r.mu.Lock()
	r.suppliers[supplier.ID] = supplier
	r.order = append(r.order, supplier.ID)
	r.mu.Unlock()

	r.logger.Debug("Supplier added", zap.String("id", supplier.ID), zap.String("name", supplier.Name))

	cp := *supplier
	return &cp, nil
}
