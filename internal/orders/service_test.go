package orders

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/printshop-backend/internal/documents"
	"github.com/angelmondragon/printshop-backend/internal/items"
	"github.com/angelmondragon/printshop-backend/pkg/config"
	"github.com/angelmondragon/printshop-backend/pkg/db/models"
	"github.com/angelmondragon/printshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
	"github.com/angelmondragon/printshop-backend/pkg/logger"
	"github.com/angelmondragon/printshop-backend/pkg/storage/local"
	"github.com/rs/zerolog"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

type failingStore struct{}

func (failingStore) Put(ctx context.Context, filename string, data []byte) (string, error) {
	return "", fmt.Errorf("disk full")
}

func (failingStore) Fetch(ctx context.Context, filename string) ([]byte, error) {
	return nil, fmt.Errorf("disk full")
}

func (failingStore) Exists(ctx context.Context, filename string) (bool, error) {
	return false, fmt.Errorf("disk full")
}

type serviceHarness struct {
	svc  Service
	conn *gorm.DB
	dir  string
}

func setupService(t *testing.T) serviceHarness {
	t.Helper()
	conn := setupOrdersTestDB(t)
	dir := t.TempDir()

	store, err := local.New(dir)
	require.NoError(t, err)

	engine := documents.NewEngine(config.DocumentsConfig{
		CompanyName: "PRINT SOLUTIONS",
		Tagline:     "Professional Printing Services",
	})
	log := logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})

	svc, err := NewService(NewRepository(conn), gormTxRunner{db: conn}, engine, store, log, nil)
	require.NoError(t, err)
	return serviceHarness{svc: svc, conn: conn, dir: dir}
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName: "Ravi Kumar",
		PhoneNumber:  "9876543210",
		OrderDate:    "2025-03-10",
		Items: []items.ItemInput{
			mustDecodeItem(`{"itemType":"box","boxType":"Magnet","length":10,"breadth":8,"height":4,"printType":"Plain","color":"Red","quantity":3,"price":12.50}`),
			mustDecodeItem(`{"itemType":"bag","bagSize":"Medium","doreType":"None","bagPrintType":"No Print","quantity":5,"price":2.00}`),
		},
	}
}

func mustDecodeItem(raw string) items.ItemInput {
	var item items.ItemInput
	if err := item.UnmarshalJSON([]byte(raw)); err != nil {
		panic(err)
	}
	return item
}

func TestSubmitPersistsAndGeneratesDocuments(t *testing.T) {
	h := setupService(t)

	result, err := h.svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEqual(t, uuid.Nil, result.OrderID)
	assert.False(t, result.DocumentsIncomplete)
	assert.Equal(t, "47.50", result.TotalAmount.StringFixed(2))

	// One document per item type, box before bag.
	require.Len(t, result.Documents, 2)
	assert.Equal(t, enums.ItemTypeBox, result.Documents[0].ItemType)
	assert.Equal(t, enums.ItemTypeBag, result.Documents[1].ItemType)
	assert.Equal(t, "37.50", result.Documents[0].GroupTotal.StringFixed(2))
	assert.Equal(t, "10.00", result.Documents[1].GroupTotal.StringFixed(2))

	stored, err := h.svc.GetOrder(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", stored.Customer.Name)
	require.Len(t, stored.Items, 2)
	// Items read back in submission order.
	assert.Equal(t, enums.ItemTypeBox, stored.Items[0].ItemType)
	assert.Equal(t, 0, stored.Items[0].Position)
	assert.Equal(t, enums.ItemTypeBag, stored.Items[1].ItemType)
	assert.Equal(t, 1, stored.Items[1].Position)
	require.NotNil(t, stored.Order.DocumentPath)
	assert.Equal(t, result.Documents[0].Filename, *stored.Order.DocumentPath)
}

func TestSubmitValidationFailureWritesNothing(t *testing.T) {
	h := setupService(t)

	input := validInput()
	input.PhoneNumber = ""
	input.Items[0].Box.BoxType = ""

	result, err := h.svc.Submit(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, result)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	details, ok := pkgerrors.As(err).Details().(map[string]any)
	require.True(t, ok)
	fields, ok := details["fields"].([]map[string]string)
	require.True(t, ok)
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		paths = append(paths, f["field"])
	}
	assert.ElementsMatch(t, []string{"phoneNumber", "items[0].boxType"}, paths)

	var count int64
	require.NoError(t, h.conn.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitReusesCustomerByPhone(t *testing.T) {
	h := setupService(t)

	first, err := h.svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	repeat := validInput()
	repeat.CustomerName = "R. Kumar"
	second, err := h.svc.Submit(context.Background(), repeat)
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID)

	var customers []models.Customer
	require.NoError(t, h.conn.Find(&customers).Error)
	require.Len(t, customers, 1)
	// First-seen name stays.
	assert.Equal(t, "Ravi Kumar", customers[0].Name)
}

func TestSubmitRollsBackWhenItemsFail(t *testing.T) {
	h := setupService(t)
	require.NoError(t, h.conn.Exec("DROP TABLE order_items").Error)

	result, err := h.svc.Submit(context.Background(), validInput())
	require.Error(t, err)
	assert.Nil(t, result)

	var count int64
	require.NoError(t, h.conn.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, h.conn.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitStoreFailureKeepsOrder(t *testing.T) {
	conn := setupOrdersTestDB(t)
	engine := documents.NewEngine(config.DocumentsConfig{CompanyName: "PRINT SOLUTIONS"})
	log := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})

	svc, err := NewService(NewRepository(conn), gormTxRunner{db: conn}, engine, failingStore{}, log, nil)
	require.NoError(t, err)

	result, err := svc.Submit(context.Background(), validInput())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.NotEqual(t, uuid.Nil, result.OrderID)
	assert.True(t, result.DocumentsIncomplete)
	assert.Empty(t, result.Documents)

	// The order row survives for regeneration.
	var count int64
	require.NoError(t, conn.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrderRequiresID(t *testing.T) {
	h := setupService(t)
	_, err := h.svc.GetOrder(context.Background(), uuid.Nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestListOrdersEmpty(t *testing.T) {
	h := setupService(t)
	rows, err := h.svc.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
