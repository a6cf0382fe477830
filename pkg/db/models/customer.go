package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is created once per distinct phone number and never updated.
type Customer struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     string    `gorm:"column:phone;not null;uniqueIndex:idx_customers_phone" json:"phone"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
