package history

import (
	"context"
	"sync"
	"time"

	"order-desk/internal/model"
	"order-desk/internal/repository"

	"github.com/rs/zerolog"
)

// Source abstracts where the history log lives. The real source is the
// external Orders API; the demo source synthesizes a local log for offline
// and demo environments and is only wired in when the demo flag is set.
type Source interface {
	// Entries returns the full log for an order, unsorted.
	Entries(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error)

	// Append adds a note to the log and returns the created entry.
	Append(ctx context.Context, orderID int64, notes, user string) (*model.StatusHistoryEntry, error)
}

// apiSource persists through the external Orders API.
type apiSource struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewAPISource creates the real, API-backed history source.
func NewAPISource(repo repository.OrderRepository, logger zerolog.Logger) Source {
	return &apiSource{
		repo:   repo,
		logger: logger.With().Str("component", "history").Logger(),
	}
}

func (s *apiSource) Entries(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	return s.repo.StatusHistory(ctx, orderID)
}

func (s *apiSource) Append(ctx context.Context, orderID int64, notes, _ string) (*model.StatusHistoryEntry, error) {
	entry, err := s.repo.AddStatusHistory(ctx, orderID, notes)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to append status history")
		return nil, err
	}
	return entry, nil
}

// demoSource keeps a synthesized in-memory log per order. Appends are local
// only; nothing ever reaches the external API.
type demoSource struct {
	mu     sync.Mutex
	logs   map[int64][]model.StatusHistoryEntry
	nextID int64
	now    func() time.Time
	logger zerolog.Logger
}

// NewDemoSource creates the offline/demo history source.
func NewDemoSource(logger zerolog.Logger) Source {
	return &demoSource{
		logs:   make(map[int64][]model.StatusHistoryEntry),
		nextID: 1,
		now:    time.Now,
		logger: logger.With().Str("component", "history-demo").Logger(),
	}
}

func (s *demoSource) Entries(_ context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.logs[orderID]
	if !ok {
		entries = s.seed(orderID)
		s.logs[orderID] = entries
	}

	out := make([]model.StatusHistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *demoSource) Append(_ context.Context, orderID int64, notes, user string) (*model.StatusHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.logs[orderID]; !ok {
		s.logs[orderID] = s.seed(orderID)
	}

	entry := model.StatusHistoryEntry{
		ID:        s.nextID,
		OrderID:   orderID,
		CreatedAt: s.now(),
		Notes:     notes,
		User:      user,
	}
	s.nextID++
	s.logs[orderID] = append(s.logs[orderID], entry)

	s.logger.Debug().Int64("order_id", orderID).Msg("appended demo history entry")
	return &entry, nil
}

// seed fabricates the creation entry every order log starts with.
func (s *demoSource) seed(orderID int64) []model.StatusHistoryEntry {
	entry := model.StatusHistoryEntry{
		ID:        s.nextID,
		OrderID:   orderID,
		CreatedAt: s.now().Add(-24 * time.Hour),
		Notes:     CreatedNote("Demo User"),
		User:      "Demo User",
	}
	s.nextID++
	return []model.StatusHistoryEntry{entry}
}
