package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"aura-portal/internal/audit"
	"aura-portal/internal/domain"
)

const (
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
	defaultMaxMessage  = 2000

	// fallbackReply substitutes for empty completions so the caller always
	// receives a non-empty reply on success.
	fallbackReply = "I'm sorry, I couldn't come up with a response to that. Please try rephrasing your question."
)

// LLMClient is the completion provider dependency of ChatService.
type LLMClient interface {
	Complete(ctx context.Context, model string, messages []domain.ChatMessage, maxTokens int, temperature float64) (string, error)
}

// Auditor records exchange steps on the audit trail.
type Auditor interface {
	Record(e audit.Entry)
	Timing(exchangeID, step string, elapsed time.Duration, details string)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// ChatService relays a single user message to the completion provider: one
// best-effort attempt, no retry, no conversation state.
type ChatService struct {
	llm           LLMClient
	trail         Auditor
	model         string
	maxTokens     int
	temperature   float64
	maxMessageLen int
}

type RelayInput struct {
	Message string
}

type RelayOutput struct {
	Reply      string
	ExchangeID string
}

func NewChatService(llm LLMClient, trail Auditor, model string, maxTokens int, temperature float64, maxMessageLen int) (*ChatService, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	if trail == nil {
		return nil, errors.New("usecase: audit trail must not be nil")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if temperature < 0 {
		temperature = defaultTemperature
	}
	if maxMessageLen <= 0 {
		maxMessageLen = defaultMaxMessage
	}
	return &ChatService{
		llm:           llm,
		trail:         trail,
		model:         model,
		maxTokens:     maxTokens,
		temperature:   temperature,
		maxMessageLen: maxMessageLen,
	}, nil
}

// Relay validates the message and forwards it, with the fixed system prompt,
// to the provider. Input errors never reach the provider.
func (s *ChatService) Relay(ctx context.Context, in RelayInput) (RelayOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return RelayOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}
	if len(message) > s.maxMessageLen {
		return RelayOutput{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}

	exchangeID := newExchangeID()
	s.trail.Record(audit.Entry{
		ExchangeID: exchangeID,
		Step:       "relay",
		Action:     "START",
		Details:    fmt.Sprintf("forwarding message (%d chars)", len(message)),
	})

	started := time.Now()
	raw, err := s.llm.Complete(ctx, s.model, buildRelayMessages(message), s.maxTokens, s.temperature)
	s.trail.Timing(exchangeID, "provider_call", time.Since(started), "chat completion")
	if err != nil {
		s.trail.Record(audit.Entry{
			ExchangeID: exchangeID,
			Step:       "relay",
			Action:     "END",
			Status:     audit.StatusFailure,
			Details:    err.Error(),
		})
		if status, ok := upstreamStatusCode(err); ok && status == http.StatusTooManyRequests {
			return RelayOutput{}, newError(ErrorRateLimited, "provider_rate_limited", err)
		}
		return RelayOutput{}, newError(ErrorUpstream, "provider_error", err)
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		reply = fallbackReply
		s.trail.Record(audit.Entry{
			ExchangeID: exchangeID,
			Step:       "relay",
			Action:     "FALLBACK",
			Status:     audit.StatusWarning,
			Details:    "provider returned an empty completion",
		})
	}

	s.trail.Record(audit.Entry{
		ExchangeID: exchangeID,
		Step:       "relay",
		Action:     "END",
		Details:    fmt.Sprintf("reply delivered (%d chars)", len(reply)),
	})

	return RelayOutput{Reply: reply, ExchangeID: exchangeID}, nil
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}

var newExchangeID = func() string {
	return fmt.Sprintf("chat_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
}
