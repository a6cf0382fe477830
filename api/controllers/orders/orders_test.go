package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalorders "github.com/angelmondragon/printshop-backend/internal/orders"
	"github.com/angelmondragon/printshop-backend/pkg/db/models"
	"github.com/angelmondragon/printshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
	"github.com/angelmondragon/printshop-backend/pkg/types"
)

type stubOrdersService struct {
	submit    func(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.SubmitResult, error)
	getOrder  func(ctx context.Context, id uuid.UUID) (*internalorders.OrderWithItems, error)
	listOrder func(ctx context.Context) ([]models.Order, error)
}

func (s *stubOrdersService) Submit(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.SubmitResult, error) {
	return s.submit(ctx, input)
}

func (s *stubOrdersService) GetOrder(ctx context.Context, id uuid.UUID) (*internalorders.OrderWithItems, error) {
	return s.getOrder(ctx, id)
}

func (s *stubOrdersService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.listOrder(ctx)
}

const createBody = `{
	"customerName": "Ravi Kumar",
	"phoneNumber": "9876543210",
	"orderDate": "2025-03-10",
	"items": [
		{"itemType":"box","boxType":"Magnet","length":10,"breadth":8,"height":4,"printType":"Plain","color":"Red","quantity":3,"price":12.50}
	]
}`

func TestCreateReturns201WithDocuments(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrdersService{
		submit: func(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.SubmitResult, error) {
			assert.Equal(t, "Ravi Kumar", input.CustomerName)
			require.Len(t, input.Items, 1)
			return &internalorders.SubmitResult{
				OrderID:     orderID,
				TotalAmount: decimal.RequireFromString("37.50"),
				Documents: []internalorders.DocumentRef{{
					ItemType:   enums.ItemTypeBox,
					Filename:   "order_abc12345_box_ravi_kumar.pdf",
					GroupTotal: decimal.RequireFromString("37.50"),
				}},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(createBody))
	w := httptest.NewRecorder()
	Create(svc, nil)(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	data := body.Data.(map[string]any)
	assert.Equal(t, orderID.String(), data["order_id"])
	assert.NotContains(t, data, "documents_incomplete")
	docs := data["documents"].([]any)
	require.Len(t, docs, 1)
	assert.Equal(t, "order_abc12345_box_ravi_kumar.pdf", docs[0].(map[string]any)["filename"])
}

func TestCreatePartialDocumentsStill201(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrdersService{
		submit: func(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.SubmitResult, error) {
			return &internalorders.SubmitResult{
				OrderID:             orderID,
				DocumentsIncomplete: true,
			}, pkgerrors.New(pkgerrors.CodeRender, "render bag document")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(createBody))
	w := httptest.NewRecorder()
	Create(svc, nil)(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	data := body.Data.(map[string]any)
	assert.Equal(t, true, data["documents_incomplete"])
}

func TestCreateValidationErrorSurfacesFields(t *testing.T) {
	svc := &stubOrdersService{
		submit: func(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.SubmitResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "order validation failed").
				WithDetails(map[string]any{"fields": []map[string]string{
					{"field": "items[0].boxType", "message": "box type is required"},
				}})
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(createBody))
	w := httptest.NewRecorder()
	Create(svc, nil)(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, string(pkgerrors.CodeValidation), body.Error.Code)
	require.NotNil(t, body.Error.Details)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	svc := &stubOrdersService{
		submit: func(ctx context.Context, input internalorders.CreateOrderInput) (*internalorders.SubmitResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"customerName":`))
	w := httptest.NewRecorder()
	Create(svc, nil)(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetailParsesID(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrdersService{
		getOrder: func(ctx context.Context, id uuid.UUID) (*internalorders.OrderWithItems, error) {
			assert.Equal(t, orderID, id)
			return &internalorders.OrderWithItems{
				Order:    models.Order{ID: orderID},
				Customer: models.Customer{Name: "Ravi Kumar"},
			}, nil
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v1/orders/{orderId}", Detail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestDetailInvalidID(t *testing.T) {
	svc := &stubOrdersService{
		getOrder: func(ctx context.Context, id uuid.UUID) (*internalorders.OrderWithItems, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v1/orders/{orderId}", Detail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetailMissingOrder(t *testing.T) {
	svc := &stubOrdersService{
		getOrder: func(ctx context.Context, id uuid.UUID) (*internalorders.OrderWithItems, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v1/orders/{orderId}", Detail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReturnsOrders(t *testing.T) {
	svc := &stubOrdersService{
		listOrder: func(ctx context.Context) ([]models.Order, error) {
			return []models.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	w := httptest.NewRecorder()
	List(svc, nil)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body.Data.([]any), 2)
}
