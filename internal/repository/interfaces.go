package repository

import (
	"context"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

// ProductFilter narrows List results. Nil/empty fields mean "no constraint";
// supplied predicates combine with AND.
type ProductFilter struct {
	Category string   // case-insensitive substring match
	Brand    string   // case-insensitive substring match
	MinPrice *float64 // inclusive, against the numeric price
	MaxPrice *float64 // inclusive
	Search   string   // case-insensitive substring against name or description
}

// ProductRepository defines catalog data access methods
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
}

// SearchHistoryRepository defines visual-search history access methods.
// Entries are append-only and listed newest-first by search date.
type SearchHistoryRepository interface {
	List(ctx context.Context) ([]*domain.SearchHistoryEntry, error)
	Add(ctx context.Context, in domain.NewSearchHistoryEntry) (*domain.SearchHistoryEntry, error)
}

// ChatMessageRepository defines chat transcript access methods. Messages are
// append-only and listed oldest-first by timestamp.
type ChatMessageRepository interface {
	List(ctx context.Context) ([]*domain.ChatMessage, error)
	Add(ctx context.Context, in domain.NewChatMessage) (*domain.ChatMessage, error)
}

// DropshipOrderRepository defines dropship order data access methods. Orders
// are listed newest-first by order date.
type DropshipOrderRepository interface {
	List(ctx context.Context) ([]*domain.DropshipOrder, error)
	GetByID(ctx context.Context, id string) (*domain.DropshipOrder, error)
	Create(ctx context.Context, in domain.NewDropshipOrder) (*domain.DropshipOrder, error)
	// UpdateStatus overwrites the order status and, when trackingNumber is
	// non-nil and non-empty, the tracking number. Unknown ids are a no-op.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingNumber *string) error
}

// SupplierRepository defines supplier data access methods
type SupplierRepository interface {
	List(ctx context.Context) ([]*domain.Supplier, error)
	ListActive(ctx context.Context) ([]*domain.Supplier, error)
	Add(ctx context.Context, in domain.NewSupplier) (*domain.Supplier, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Product       ProductRepository
	SearchHistory SearchHistoryRepository
	ChatMessage   ChatMessageRepository
	DropshipOrder DropshipOrderRepository
	Supplier      SupplierRepository
}
