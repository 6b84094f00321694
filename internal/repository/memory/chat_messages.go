package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

type chatMessageRepository struct {
	mu       sync.RWMutex
	messages map[string]*domain.ChatMessage
	logger   *zap.Logger
}

// NewChatMessageRepository creates a new in-memory chat message repository
func NewChatMessageRepository(logger *zap.Logger) *chatMessageRepository {
	return &chatMessageRepository{
		messages: make(map[string]*domain.ChatMessage),
		logger:   logger,
	}
}

func (r *chatMessageRepository) List(ctx context.Context) ([]*domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*domain.ChatMessage, 0, len(r.messages))
	for _, m := range r.messages {
		cp := *m
		messages = append(messages, &cp)
	}
	// Oldest first, for transcript display
	sort.Slice(messages, func(i, j int) bool {
		return laterDate(messages[j].Timestamp, messages[i].Timestamp)
	})
	return messages, nil
}

func (r *chatMessageRepository) Add(ctx context.Context, in domain.NewChatMessage) (*domain.ChatMessage, error) {
	message := &domain.ChatMessage{
		ID:        uuid.New().String(),
		Content:   in.Content,
		IsUser:    in.IsUser,
		Timestamp: in.Timestamp,
	}

	r.mu.Lock()
	r.messages[message.ID] = message
	r.mu.Unlock()

	r.logger.Debug("Chat message added", zap.String("id", message.ID), zap.Bool("is_user", message.IsUser))

	cp := *message
	return &cp, nil
}
