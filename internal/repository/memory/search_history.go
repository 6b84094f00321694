package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

type searchHistoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.SearchHistoryEntry
	logger  *zap.Logger
}

// NewSearchHistoryRepository creates a new in-memory search history repository
func NewSearchHistoryRepository(logger *zap.Logger) *searchHistoryRepository {
	return &searchHistoryRepository{
		entries: make(map[string]*domain.SearchHistoryEntry),
		logger:  logger,
	}
}

func (r *searchHistoryRepository) List(ctx context.Context) ([]*domain.SearchHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.SearchHistoryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		entries = append(entries, &cp)
	}
	// Newest first
	sort.Slice(entries, func(i, j int) bool {
		return laterDate(entries[i].SearchDate, entries[j].SearchDate)
	})
	return entries, nil
}

func (r *searchHistoryRepository) Add(ctx context.Context, in domain.NewSearchHistoryEntry) (*domain.SearchHistoryEntry, error) {
	entry := &domain.SearchHistoryEntry{
		ID:           uuid.New().String(),
		ImageURL:     in.ImageURL,
		SearchDate:   in.SearchDate,
		ResultsFound: in.ResultsFound,
	}

	r.mu.Lock()
	r.entries[entry.ID] = entry
	r.mu.Unlock()

	r.logger.Debug("Search history entry added", zap.String("id", entry.ID), zap.Int("results_found", entry.ResultsFound))

	cp := *entry
	return &cp, nil
}
