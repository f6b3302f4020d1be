package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-desk/internal/history"
	"order-desk/internal/model"
	"order-desk/internal/orderlist"
	"order-desk/internal/repository"
	"order-desk/internal/service"
	"order-desk/internal/status"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, query service.ListQuery) (*service.ListResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockOrderService) Search(ctx context.Context, q string) ([]model.Order, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Transition(ctx context.Context, req service.TransitionRequest) (*service.TransitionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransitionResult), args.Error(1)
}

func (m *MockOrderService) AssignCourier(ctx context.Context, orderID int64, courier, user string) (*service.CourierResult, error) {
	args := m.Called(ctx, orderID, courier, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CourierResult), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id int64) (model.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Notification), args.Error(1)
}

func (m *MockOrderService) BulkStatus(ctx context.Context, ids []int64, target status.Status, user string) (*service.BulkResult, error) {
	args := m.Called(ctx, ids, target, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkResult), args.Error(1)
}

func (m *MockOrderService) BulkDelete(ctx context.Context, ids []int64) (*service.BulkResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkResult), args.Error(1)
}

func (m *MockOrderService) History(ctx context.Context, orderID int64, page int) (*history.Page, error) {
	args := m.Called(ctx, orderID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.Page), args.Error(1)
}

func (m *MockOrderService) AddNote(ctx context.Context, orderID int64, notes, user string) (*model.StatusHistoryEntry, error) {
	args := m.Called(ctx, orderID, notes, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StatusHistoryEntry), args.Error(1)
}

func (m *MockOrderService) BuildPrintJob(ctx context.Context, ids []int64) (*model.PrintJob, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintJob), args.Error(1)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestOrderHandler_List(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("List", mock.Anything, mock.MatchedBy(func(q service.ListQuery) bool {
		return q.Filter.Status == status.Processing && q.Filter.Phone == "017" && q.Page == 2
	})).Return(&service.ListResult{
		Page: orderlist.Page{Orders: []model.Order{{ID: 1}}, Number: 2, TotalRows: 21},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=Processing&phone=017&page=2", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result service.ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 21, result.Page.TotalRows)
	svc.AssertExpectations(t)
}

func TestOrderHandler_List_RejectsBadDate(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders?date=31-12-2024", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestOrderHandler_Transition(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("Transition", mock.Anything, service.TransitionRequest{
		OrderID: 100,
		Target:  status.Completed,
		Context: status.ContextDefault,
		User:    "Admin",
	}).Return(&service.TransitionResult{
		Order:        &model.Order{ID: 100, Status: status.Completed},
		Notification: model.Success("done"),
	}, nil)

	body, _ := json.Marshal(map[string]string{"status": "Completed", "user": "Admin"})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/orders/100/status", bytes.NewReader(body)), "id", "100")
	rec := httptest.NewRecorder()
	h.Transition(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result service.TransitionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Redirect)
	assert.Equal(t, model.NotificationSuccess, result.Notification.Level)
}

func TestOrderHandler_Transition_NotAllowed(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("Transition", mock.Anything, mock.Anything).Return(nil, model.ErrStatusNotAllowed)

	body, _ := json.Marshal(map[string]string{"status": "Invoiced"})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/orders/1/status", bytes.NewReader(body)), "id", "1")
	rec := httptest.NewRecorder()
	h.Transition(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodeStatusNotAllowed, resp.Error)
}

func TestOrderHandler_Transition_InvalidID(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/orders/abc/status", nil), "id", "abc")
	rec := httptest.NewRecorder()
	h.Transition(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything)
}

func TestOrderHandler_AssignCourier(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("AssignCourier", mock.Anything, int64(5), "Pathao", "Admin").
		Return(&service.CourierResult{
			Order:        &model.Order{ID: 5, Courier: "Pathao"},
			Notification: model.Success("assigned"),
		}, nil)

	body, _ := json.Marshal(map[string]string{"courier": "Pathao", "user": "Admin"})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/orders/5/courier", bytes.NewReader(body)), "id", "5")
	rec := httptest.NewRecorder()
	h.AssignCourier(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result service.CourierResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Pathao", result.Order.Courier)
	svc.AssertExpectations(t)
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("Get", mock.Anything, int64(999)).Return(nil, repository.ErrOrderNotFound)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/999", nil), "id", "999")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_BulkStatus_EmptySelection(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("BulkStatus", mock.Anything, []int64(nil), status.Completed, "").
		Return(nil, model.ErrEmptySelection)

	body, _ := json.Marshal(map[string]any{"ids": nil, "status": "Completed"})
	req := httptest.NewRequest(http.MethodPost, "/api/orders/bulk/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.BulkStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodeEmptySelection, resp.Error)
}

func TestOrderHandler_BulkDelete(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("BulkDelete", mock.Anything, []int64{1, 2}).Return(&service.BulkResult{
		Succeeded:      []int64{1, 2},
		ClearSelection: true,
		Notification:   model.Success("2 order(s) deleted"),
	}, nil)

	body, _ := json.Marshal(map[string]any{"ids": []int64{1, 2}})
	req := httptest.NewRequest(http.MethodPost, "/api/orders/bulk/delete", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.BulkDelete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result service.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.ClearSelection)
}

func TestOrderHandler_ToggleSelection(t *testing.T) {
	h := NewOrderHandler(new(MockOrderService), zerolog.Nop())

	body, _ := json.Marshal(map[string]any{
		"selected": []int64{1, 2, 3, 99},
		"visible":  []int64{1, 2, 3},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders/selection/toggle", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ToggleSelection(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Selected []int64 `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []int64{99}, result.Selected, "fully selected page toggles off, other pages stay")
}

func TestOrderHandler_History(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("History", mock.Anything, int64(7), 2).Return(&history.Page{
		Entries: []model.StatusHistoryEntry{{ID: 3, OrderID: 7}},
		Number:  2,
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/7/history?page=2", nil), "id", "7")
	rec := httptest.NewRecorder()
	h.History(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page history.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Entries, 1)
	assert.Equal(t, int64(3), page.Entries[0].ID)
}

func TestOrderHandler_AddNote(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("AddNote", mock.Anything, int64(7), "Hold until Friday", "Admin").
		Return(&model.StatusHistoryEntry{ID: 11, OrderID: 7, Notes: "Hold until Friday"}, nil)

	body, _ := json.Marshal(map[string]string{"notes": "Hold until Friday", "user": "Admin"})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/orders/7/history", bytes.NewReader(body)), "id", "7")
	rec := httptest.NewRecorder()
	h.AddNote(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_UpstreamFailure(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("Search", mock.Anything, "q").
		Return(nil, &repository.UpstreamError{StatusCode: 500})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/search?q=q", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrCodeUpstreamFailure, resp.Error)
}
