package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

type productRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Product
	order  []string // insertion order, so List stays deterministic
	logger *zap.Logger
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(logger *zap.Logger) *productRepository {
	return &productRepository{
		byID:   make(map[string]*domain.Product),
		logger: logger,
	}
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		if !matchesFilter(p, filter) {
			continue
		}
		cp := *p
		products = append(products, &cp)
	}
	return products, nil
}

// matchesFilter applies AND semantics: every supplied predicate must hold.
func matchesFilter(p *domain.Product, f repository.ProductFilter) bool {
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !containsFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			return false
		}
		if f.MinPrice != nil && price < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			return false
		}
	}
	if f.Search != "" {
		inName := containsFold(p.Name, f.Search)
		inDescription := p.Description != nil && containsFold(*p.Description, f.Search)
		if !inName && !inDescription {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	cp := *p
	return &cp, nil
}

func (r *productRepository) Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	product := &domain.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Brand:            in.Brand,
		Price:            in.Price,
		OriginalPrice:    in.OriginalPrice,
		Category:         in.Category,
		Description:      in.Description,
		ImageURL:         in.ImageURL,
		AdditionalImages: in.AdditionalImages,
		Rating:           in.Rating,
		ReviewCount:      in.ReviewCount,
		Specifications:   in.Specifications,
		InStock:          true,
	}

	// Defaulting rules for optional fields
	if product.Rating == "" {
		product.Rating = "0"
	}
	if product.AdditionalImages == nil {
		product.AdditionalImages = []string{}
	}
	if product.Specifications == nil {
		product.Specifications = []string{}
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}

	r.mu.Lock()
	r.byID[product.ID] = product
	r.order = append(r.order, product.ID)
	r.mu.Unlock()

	r.logger.Debug("Product created", zap.String("id", product.ID), zap.String("name", product.Name))

	cp := *product
	return &cp, nil
}
