package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/printshop-backend/pkg/enums"
)

// OrderItem is the stored form of a line item. ItemData holds only the
// variant-specific fields; the discriminator, quantity and price live in
// sibling columns. Position is the zero-based index of the item within its
// submission; batch inserts share one created_at timestamp, so retrieval
// orders by position instead.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index:idx_order_items_order" json:"order_id"`
	ItemType  enums.ItemType  `gorm:"column:item_type;type:text;not null" json:"item_type"`
	ItemData  json.RawMessage `gorm:"column:item_data;type:text;not null" json:"item_data"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Position  int             `gorm:"column:position;not null" json:"position"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// LineTotal is quantity times unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
