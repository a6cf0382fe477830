package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order stores the totals computed at creation time. TotalAmount is never
// recomputed from items afterwards; items are immutable once inserted.
type Order struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CustomerID   uuid.UUID       `gorm:"column:customer_id;type:uuid;not null;index:idx_orders_customer" json:"customer_id"`
	OrderDate    time.Time       `gorm:"column:order_date;not null" json:"order_date"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null" json:"total_amount"`
	DocumentPath *string         `gorm:"column:document_path" json:"document_path,omitempty"`
	Customer     *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
