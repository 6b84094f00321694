package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/ai"
	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
)

// defaultBotReply answers when no AI provider can produce a recommendation.
const defaultBotReply = "Thanks for your message! I'm here to help you find the perfect product. " +
	"Would you like me to help you compare some options or do you have specific questions?"

// ReplyScheduler posts a delayed bot reply for every user chat message. The
// delay simulates an agent typing. All pending replies are cancelled together
// when the scheduler closes, so shutdown never waits out the delay.
type ReplyScheduler struct {
	chats  repository.ChatMessageRepository
	ai     *ai.Service
	delay  time.Duration
	logger *zap.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	dropped atomic.Int64
}

// NewReplyScheduler creates a reply scheduler. The ai service may be nil, in
// which case every reply uses the canned text.
func NewReplyScheduler(chats repository.ChatMessageRepository, aiSvc *ai.Service, delay time.Duration, logger *zap.Logger) *ReplyScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &ReplyScheduler{
		chats:  chats,
		ai:     aiSvc,
		delay:  delay,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Schedule queues one bot reply to the given user message. Returns
// immediately; the reply lands after the configured delay.
func (s *ReplyScheduler) Schedule(userMessage string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-s.ctx.Done():
			s.dropped.Add(1)
			return
		case <-timer.C:
		}

		s.reply(userMessage)
	}()
}

func (s *ReplyScheduler) reply(userMessage string) {
	content := defaultBotReply

	if s.ai != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if recommendation, err := s.ai.RecommendProducts(ctx, userMessage); err == nil && recommendation != "" {
			content = recommendation
		}
	}

	if _, err := s.chats.Add(context.Background(), domain.NewChatMessage{
		Content:   content,
		IsUser:    false,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Error("Failed to store bot reply", zap.Error(err))
	}
}

// Close cancels pending replies and waits for in-flight handlers to return.
func (s *ReplyScheduler) Close() {
	s.cancel()
	s.wg.Wait()

	if n := s.dropped.Load(); n > 0 {
		s.logger.Info("Dropped pending chat replies on shutdown", zap.Int64("count", n))
	}
}
