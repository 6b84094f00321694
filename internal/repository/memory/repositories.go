package memory

import (
	"time"

	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/repository"
)

// NewRepositories creates the in-memory store. All collections live for the
// lifetime of the process and reset on restart; there is no persistence.
func NewRepositories(logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Product:       NewProductRepository(logger),
		SearchHistory: NewSearchHistoryRepository(logger),
		ChatMessage:   NewChatMessageRepository(logger),
		DropshipOrder: NewDropshipOrderRepository(logger),
		Supplier:      NewSupplierRepository(logger),
	}
}

// dateValue orders ISO-8601 date strings. Unparseable values compare by the
// raw string, which keeps sorting total instead of failing the read.
func dateValue(s string) int64 {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UnixNano()
	}
	return 0
}

// laterDate reports whether a sorts after b.
func laterDate(a, b string) bool {
	av, bv := dateValue(a), dateValue(b)
	if av != bv {
		return av > bv
	}
	return a > b
}
