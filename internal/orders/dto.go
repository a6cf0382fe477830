package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/printshop-backend/internal/items"
	"github.com/angelmondragon/printshop-backend/pkg/db/models"
	"github.com/angelmondragon/printshop-backend/pkg/enums"
)

// OrderDateLayout is the accepted order date format.
const OrderDateLayout = "2006-01-02"

// CreateOrderInput is the raw submission shape for a new order.
type CreateOrderInput struct {
	CustomerName string            `json:"customerName" validate:"required"`
	PhoneNumber  string            `json:"phoneNumber" validate:"required"`
	OrderDate    string            `json:"orderDate" validate:"required"`
	Items        []items.ItemInput `json:"items" validate:"min=1"`
}

// Validate collects every order-level and item-level failure in one pass.
// Order-level problems are reported independently of the per-item ones, so
// the caller can surface the full picture at once.
func (in CreateOrderInput) Validate() []items.FieldError {
	var errs []items.FieldError
	add := func(field, message string) {
		errs = append(errs, items.FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		add("customerName", "customer name is required")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		add("phoneNumber", "phone number is required")
	}
	if in.OrderDate == "" {
		add("orderDate", "order date is required")
	} else if _, err := time.Parse(OrderDateLayout, in.OrderDate); err != nil {
		add("orderDate", fmt.Sprintf("order date must match %s", OrderDateLayout))
	}
	if len(in.Items) == 0 {
		add("items", "at least one item is required")
	}

	for i := range in.Items {
		errs = append(errs, in.Items[i].Validate(fmt.Sprintf("items[%d]", i))...)
	}
	return errs
}

// ParsedDate returns the order date as a time value. Call after Validate.
func (in CreateOrderInput) ParsedDate() (time.Time, error) {
	return time.Parse(OrderDateLayout, in.OrderDate)
}

// TotalAmount sums price times quantity over every item, exact.
func (in CreateOrderInput) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range in.Items {
		total = total.Add(in.Items[i].LineTotal())
	}
	return total
}

// OrderWithItems is the canonical stored shape of an order: the row, its
// owning customer and its items in insertion order.
type OrderWithItems struct {
	Order    models.Order       `json:"order"`
	Customer models.Customer    `json:"customer"`
	Items    []models.OrderItem `json:"items"`
}

// DocumentRef points at one stored production document.
type DocumentRef struct {
	ItemType   enums.ItemType  `json:"item_type"`
	Filename   string          `json:"filename"`
	GroupTotal decimal.Decimal `json:"group_total"`
}

// SubmitResult reports a submission outcome. DocumentsIncomplete is set when
// the order row is durable but one or more production documents could not be
// generated or stored; the caller can retry document generation without
// resubmitting the order.
type SubmitResult struct {
	OrderID             uuid.UUID       `json:"order_id"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Documents           []DocumentRef   `json:"documents"`
	DocumentsIncomplete bool            `json:"documents_incomplete"`
}
