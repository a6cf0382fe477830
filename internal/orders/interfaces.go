package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/printshop-backend/pkg/db/models"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	FindCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	GetOrderWithItems(ctx context.Context, id uuid.UUID) (*OrderWithItems, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderDocumentPath(ctx context.Context, id uuid.UUID, filename string) error
}
