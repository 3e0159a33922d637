package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/internal/domain/providers"
	"github.com/ajaniguide/ajani/backend/internal/domain/repositories"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/observability"
)

const continuationCommand = "more"

const fetchFailureReply = "I'm having trouble fetching listings right now. Please try again in a moment."

// ChatInput is one user turn. Location carries browser-provided coordinates
// when the client shared them; ClientIP is the fallback for IP lookup.
type ChatInput struct {
	ConversationID string
	Text           string
	Location       *entities.Location
	ClientIP       string
}

// ChatResult is the outcome of one handled turn.
type ChatResult struct {
	ConversationID string                 `json:"conversation_id"`
	Reply          string                 `json:"reply"`
	Messages       []entities.ChatMessage `json:"messages"`
}

// conversationState pairs a conversation with its turn lock. Turns within one
// conversation are serialized; separate conversations proceed independently.
type conversationState struct {
	mu   sync.Mutex
	conv *entities.Conversation
}

// ChatService orchestrates the chat pipeline: parse, filter, paginate,
// format. Every failure kind is converted to a user-visible reply here; none
// propagate as errors.
type ChatService struct {
	mu            sync.Mutex
	conversations map[string]*conversationState

	source    repositories.ListingSource
	locator   providers.LocationProvider
	parser    *QueryParser
	filter    *FilterService
	formatter *ReplyFormatter
	fallback  *FallbackPolicy
	pageSize  int
	metrics   *observability.Metrics
}

// NewChatService creates the chat orchestrator. locator and metrics may be
// nil; pageSize falls back to the default when not positive.
func NewChatService(
	source repositories.ListingSource,
	locator providers.LocationProvider,
	filter *FilterService,
	pageSize int,
	metrics *observability.Metrics,
) *ChatService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ChatService{
		conversations: make(map[string]*conversationState),
		source:        source,
		locator:       locator,
		parser:        NewQueryParser(),
		filter:        filter,
		formatter:     NewReplyFormatter(),
		fallback:      NewFallbackPolicy(),
		pageSize:      pageSize,
		metrics:       metrics,
	}
}

// HandleMessage processes one user turn and returns the updated transcript.
func (s *ChatService) HandleMessage(ctx context.Context, input ChatInput) (*ChatResult, error) {
	state := s.state(input.ConversationID)
	state.mu.Lock()
	defer state.mu.Unlock()

	conv := state.conv
	now := time.Now().UTC()
	conv.Messages = append(conv.Messages, entities.ChatMessage{
		Sender:    entities.SenderUser,
		Text:      input.Text,
		CreatedAt: now,
	})

	reply := s.replyFor(ctx, conv, input)

	conv.Messages = append(conv.Messages, entities.ChatMessage{
		Sender:    entities.SenderBot,
		Text:      reply,
		CreatedAt: time.Now().UTC(),
	})
	conv.UpdatedAt = time.Now().UTC()

	if s.metrics != nil {
		s.metrics.ChatTurnCount.Add(ctx, 1)
	}

	messages := make([]entities.ChatMessage, len(conv.Messages))
	copy(messages, conv.Messages)

	return &ChatResult{
		ConversationID: conv.ID,
		Reply:          reply,
		Messages:       messages,
	}, nil
}

func (s *ChatService) replyFor(ctx context.Context, conv *entities.Conversation, input ChatInput) string {
	trimmed := strings.TrimSpace(input.Text)

	if strings.EqualFold(trimmed, continuationCommand) {
		if conv.LastQuery == nil {
			return s.fallback.ReplyFor(strings.ToLower(trimmed))
		}
		return s.answer(ctx, conv, conv.LastQuery, conv.PageCursor+1)
	}

	q, ok := s.parser.Parse(input.Text)
	if !ok {
		if s.metrics != nil {
			s.metrics.ParseMissCount.Add(ctx, 1)
		}
		return s.fallback.ReplyFor(strings.ToLower(trimmed))
	}

	if q.NearMe && conv.Location == nil {
		if input.Location != nil {
			conv.Location = input.Location
		} else if s.locator != nil {
			// Best effort: a denied or failed lookup only disables the
			// proximity sort for this turn.
			if loc, err := s.locator.Locate(ctx, input.ClientIP); err == nil {
				conv.Location = loc
			} else {
				log.Debug().Err(err).Str("conversation_id", conv.ID).Msg("location lookup failed")
			}
		}
	}

	return s.answer(ctx, conv, q, 0)
}

// answer runs filter, paginate and format for the query at the given cursor.
// Continuation state commits only after a successful fetch, so a failed
// "more" never skips pages.
func (s *ChatService) answer(ctx context.Context, conv *entities.Conversation, q *entities.ListingQuery, cursor int) string {
	listings, err := s.source.FetchAll(ctx)
	if err != nil {
		log.Warn().Err(err).Str("conversation_id", conv.ID).Msg("listing fetch failed")
		return fetchFailureReply
	}
	if s.metrics != nil {
		s.metrics.SheetFetchCount.Add(ctx, 1)
	}

	ranked := s.filter.Apply(listings, q, conv.Location)
	page := Paginate(ranked, cursor, s.pageSize)

	conv.LastQuery = q
	if len(page.Items) == 0 {
		conv.PageCursor = 0
		if cursor == 0 {
			return s.formatter.NoResults(q)
		}
		return s.formatter.NoMoreResults(q)
	}

	conv.PageCursor = cursor
	return s.formatter.Format(q, page)
}

func (s *ChatService) state(id string) *conversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if state, ok := s.conversations[id]; ok {
			return state
		}
	}
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	state := &conversationState{
		conv: &entities.Conversation{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	s.conversations[id] = state
	return state
}
