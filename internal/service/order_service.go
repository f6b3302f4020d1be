package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"order-desk/internal/history"
	"order-desk/internal/model"
	"order-desk/internal/orderlist"
	"order-desk/internal/repository"
	"order-desk/internal/status"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo     repository.OrderRepository
	settings repository.SettingsRepository
	histSrc  history.Source
	logger   zerolog.Logger

	// inflight suppresses duplicate status updates for an order while one
	// is still pending, mirroring the disabled dropdown in the dashboard.
	mu       sync.Mutex
	inflight map[int64]bool
}

// NewOrderService creates the order administration service.
func NewOrderService(
	repo repository.OrderRepository,
	settings repository.SettingsRepository,
	histSrc history.Source,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		repo:     repo,
		settings: settings,
		histSrc:  histSrc,
		logger:   logger.With().Str("service", "order").Logger(),
		inflight: make(map[int64]bool),
	}
}

// List fetches the collection and derives the requested view in memory.
func (s *orderService) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch orders")
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	// the view may already be gone; never commit a stale response
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orderlist.Sort(orders)
	counts := orderlist.CountByStatus(orders)
	filtered := query.Filter.Apply(orders)

	return &ListResult{
		Page:   orderlist.Paginate(filtered, query.Page, query.PageSize),
		Counts: counts,
	}, nil
}

// Search performs the header quick-search upstream.
func (s *orderService) Search(ctx context.Context, q string) ([]model.Order, error) {
	orders, err := s.repo.Search(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Str("query", q).Msg("order search failed")
		return nil, fmt.Errorf("search orders: %w", err)
	}
	orderlist.Sort(orders)
	return orders, nil
}

// Get retrieves a single order.
func (s *orderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}

// Transition performs the full status-change side-effect chain: persist
// upstream, append history, compute the redirect, build the notification.
// Nothing is applied unless the Orders API confirms the update.
func (s *orderService) Transition(ctx context.Context, req TransitionRequest) (*TransitionResult, error) {
	if !req.Target.Valid() {
		return nil, model.ErrInvalidStatus
	}
	if !status.Allowed(req.Context, req.Target) {
		s.logger.Warn().
			Int64("order_id", req.OrderID).
			Str("target", req.Target.String()).
			Str("context", string(req.Context)).
			Msg("status not selectable in this view")
		return nil, model.ErrStatusNotAllowed
	}

	if !s.begin(req.OrderID) {
		return nil, model.ErrUpdateInFlight
	}
	defer s.end(req.OrderID)

	current, err := s.repo.Get(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", req.OrderID, err)
	}

	target := req.Target
	updated, err := s.repo.Update(ctx, req.OrderID, repository.OrderPatch{Status: &target})
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", req.OrderID).
			Str("target", target.String()).
			Msg("status update failed")
		return nil, fmt.Errorf("update order %d: %w", req.OrderID, err)
	}

	note := history.StatusChangeNote(current.Status, target)
	if _, err := s.histSrc.Append(ctx, req.OrderID, note, req.User); err != nil {
		// the transition itself is committed; a lost log line is logged,
		// not surfaced as a failure
		s.logger.Error().Err(err).Int64("order_id", req.OrderID).Msg("history append failed")
	}

	result := &TransitionResult{
		Order:        updated,
		Notification: model.Success(fmt.Sprintf("Order #%d moved to %s", req.OrderID, target)),
	}
	if route, ok := status.BucketRoute(target); ok {
		result.Redirect = route
	}

	s.logger.Info().
		Int64("order_id", req.OrderID).
		Str("from", current.Status.String()).
		Str("to", target.String()).
		Str("redirect", result.Redirect).
		Msg("order status changed")
	return result, nil
}

// AssignCourier sets the courier upstream and appends the assignment to the
// status log. It shares the in-flight guard with Transition so a pending
// status change and a courier change never race on the same order.
func (s *orderService) AssignCourier(ctx context.Context, orderID int64, courier, user string) (*CourierResult, error) {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidJSON, "Courier name is required")
	}

	if !s.begin(orderID) {
		return nil, model.ErrUpdateInFlight
	}
	defer s.end(orderID)

	updated, err := s.repo.Update(ctx, orderID, repository.OrderPatch{Courier: &courier})
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", orderID).
			Str("courier", courier).
			Msg("courier assignment failed")
		return nil, fmt.Errorf("update order %d: %w", orderID, err)
	}

	note := history.CourierNote(courier)
	if _, err := s.histSrc.Append(ctx, orderID, note, user); err != nil {
		s.logger.Error().Err(err).Int64("order_id", orderID).Msg("history append failed")
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Str("courier", courier).
		Msg("courier assigned")
	return &CourierResult{
		Order:        updated,
		Notification: model.Success(fmt.Sprintf("Order #%d assigned to %s", orderID, courier)),
	}, nil
}

// Delete removes a single order after the API confirms it.
func (s *orderService) Delete(ctx context.Context, id int64) (model.Notification, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("delete failed")
		return model.Failure("Failed to delete order"), fmt.Errorf("delete order %d: %w", id, err)
	}
	s.logger.Info().Int64("order_id", id).Msg("order deleted")
	return model.Success(fmt.Sprintf("Order #%d deleted", id)), nil
}

// BulkStatus fires one update per selected order concurrently and settles
// all of them before reporting. Partial failure is reported per item, never
// as a half-applied list.
func (s *orderService) BulkStatus(ctx context.Context, ids []int64, target status.Status, user string) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, model.ErrEmptySelection
	}
	if !target.Valid() {
		return nil, model.ErrInvalidStatus
	}

	result := s.fanOut(ids, func(id int64) error {
		st := target
		if _, err := s.repo.Update(ctx, id, repository.OrderPatch{Status: &st}); err != nil {
			return err
		}
		note := history.BulkStatusNote(target)
		if _, err := s.histSrc.Append(ctx, id, note, user); err != nil {
			s.logger.Error().Err(err).Int64("order_id", id).Msg("history append failed")
		}
		return nil
	})

	result.Notification = s.bulkNotification(result, fmt.Sprintf("moved to %s", target))
	s.logger.Info().
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Str("target", target.String()).
		Msg("bulk status change settled")
	return result, nil
}

// BulkDelete removes the selection best-effort, one request per order.
func (s *orderService) BulkDelete(ctx context.Context, ids []int64) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, model.ErrEmptySelection
	}

	result := s.fanOut(ids, func(id int64) error {
		return s.repo.Delete(ctx, id)
	})

	result.Notification = s.bulkNotification(result, "deleted")
	s.logger.Info().
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("bulk delete settled")
	return result, nil
}

// History returns one display-sorted page of the status log.
func (s *orderService) History(ctx context.Context, orderID int64, page int) (*history.Page, error) {
	entries, err := s.histSrc.Entries(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to fetch status history")
		return nil, fmt.Errorf("fetch status history: %w", err)
	}

	history.SortForDisplay(entries)
	p := history.Paginate(entries, page, history.DefaultPageSize)
	return &p, nil
}

// AddNote appends a manual note to the status log.
func (s *orderService) AddNote(ctx context.Context, orderID int64, notes, user string) (*model.StatusHistoryEntry, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidJSON, "Note text is required")
	}
	entry, err := s.histSrc.Append(ctx, orderID, notes, user)
	if err != nil {
		return nil, fmt.Errorf("append status history: %w", err)
	}
	return entry, nil
}

// BuildPrintJob assembles the transient job handed to the print composers.
// A failed prefix lookup degrades to plain "#id" numbering rather than
// blocking the print.
func (s *orderService) BuildPrintJob(ctx context.Context, ids []int64) (*model.PrintJob, error) {
	if len(ids) == 0 {
		return nil, model.ErrEmptySelection
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	orderlist.Sort(orders)

	prefix, err := s.settings.InvoicePrefix(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("invoice prefix unavailable, falling back to #id numbering")
		prefix = ""
	}

	job := model.NewPrintJob(ids, orders, prefix)
	s.logger.Info().
		Str("job_id", job.ID.String()).
		Int("selected", len(ids)).
		Msg("print job assembled")
	return &job, nil
}

// fanOut runs op once per id concurrently and collects per-item outcomes.
// Results are only assembled after every request has settled.
func (s *orderService) fanOut(ids []int64, op func(id int64) error) *BulkResult {
	errs := make([]error, len(ids))
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			errs[i] = op(id)
		}(i, id)
	}
	wg.Wait()

	result := &BulkResult{}
	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, BulkFailure{OrderID: id, Message: errs[i].Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	result.ClearSelection = len(result.Failed) == 0
	return result
}

func (s *orderService) bulkNotification(r *BulkResult, action string) model.Notification {
	if len(r.Failed) == 0 {
		return model.Success(fmt.Sprintf("%d order(s) %s", len(r.Succeeded), action))
	}
	if len(r.Succeeded) == 0 {
		return model.Failure(fmt.Sprintf("Failed to update %d order(s)", len(r.Failed)))
	}
	return model.Warning(fmt.Sprintf("%d order(s) %s, %d failed", len(r.Succeeded), action, len(r.Failed)))
}

func (s *orderService) begin(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[id] {
		return false
	}
	s.inflight[id] = true
	return true
}

func (s *orderService) end(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}
