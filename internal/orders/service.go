package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/printshop-backend/internal/documents"
	"github.com/angelmondragon/printshop-backend/internal/items"
	"github.com/angelmondragon/printshop-backend/pkg/db"
	"github.com/angelmondragon/printshop-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
	"github.com/angelmondragon/printshop-backend/pkg/logger"
	"github.com/angelmondragon/printshop-backend/pkg/metrics"
	"github.com/angelmondragon/printshop-backend/pkg/storage"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// DocumentRenderer turns a stored order into its production documents.
type DocumentRenderer interface {
	Render(order models.Order, customer models.Customer, rows []models.OrderItem) ([]documents.Document, error)
}

// Service defines the order intake and lookup operations.
type Service interface {
	Submit(ctx context.Context, input CreateOrderInput) (*SubmitResult, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderWithItems, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	renderer DocumentRenderer
	store    storage.Store
	log      *logger.Logger
	metrics  *metrics.OrderMetrics
}

// NewService builds the order service with the required dependencies.
func NewService(repo Repository, tx txRunner, renderer DocumentRenderer, store storage.Store, log *logger.Logger, m *metrics.OrderMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("document renderer required")
	}
	if store == nil {
		return nil, fmt.Errorf("artifact store required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		renderer: renderer,
		store:    store,
		log:      log,
		metrics:  m,
	}, nil
}

// Submit validates and persists a submission, then generates its production
// documents. Persistence is atomic: either the customer, the order and every
// item land together or nothing does. Document failures after the commit do
// not roll anything back; the result carries the durable order id with
// DocumentsIncomplete set so the caller can regenerate later.
func (s *service) Submit(ctx context.Context, input CreateOrderInput) (*SubmitResult, error) {
	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		s.metrics.IncSubmission("validation_failed")
		return nil, validationError(fieldErrs)
	}

	orderDate, err := input.ParsedDate()
	if err != nil {
		s.metrics.IncSubmission("validation_failed")
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order date")
	}

	var orderID uuid.UUID
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		customer, err := s.resolveCustomer(ctx, repo, input.CustomerName, input.PhoneNumber)
		if err != nil {
			return err
		}

		order := &models.Order{
			CustomerID:  customer.ID,
			OrderDate:   orderDate,
			TotalAmount: input.TotalAmount(),
		}
		if err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		orderID = order.ID

		rows, err := buildItemRows(order.ID, input.Items)
		if err != nil {
			return err
		}
		if err := repo.CreateOrderItems(ctx, rows); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}
		return nil
	})
	if err != nil {
		s.metrics.IncSubmission("persist_failed")
		return nil, err
	}

	ctx = s.log.WithOrderID(ctx, orderID.String())
	s.log.Info(ctx, "order persisted")

	result := &SubmitResult{OrderID: orderID}

	stored, err := s.repo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		s.metrics.IncSubmission("documents_incomplete")
		result.DocumentsIncomplete = true
		return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order for rendering")
	}
	result.TotalAmount = stored.Order.TotalAmount

	refs, err := s.generateDocuments(ctx, stored)
	result.Documents = refs
	if err != nil {
		s.metrics.IncSubmission("documents_incomplete")
		result.DocumentsIncomplete = true
		return result, err
	}

	s.metrics.IncSubmission("success")
	return result, nil
}

// resolveCustomer reuses the existing customer for an exact phone match and
// creates one otherwise. The first-seen name stays authoritative.
func (s *service) resolveCustomer(ctx context.Context, repo Repository, name, phone string) (*models.Customer, error) {
	customer, err := repo.FindCustomerByPhone(ctx, phone)
	if err == nil {
		return customer, nil
	}
	if !isNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up customer")
	}

	customer = &models.Customer{Name: name, Phone: phone}
	if err := repo.CreateCustomer(ctx, customer); err != nil {
		// A concurrent submission may have claimed the phone number first.
		if db.IsUniqueViolation(err, "idx_customers_phone") || db.IsUniqueViolation(err, "") {
			existing, findErr := repo.FindCustomerByPhone(ctx, phone)
			if findErr == nil {
				return existing, nil
			}
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return customer, nil
}

// generateDocuments renders every item-type group, stores each artifact and
// records the first filename on the order row.
func (s *service) generateDocuments(ctx context.Context, stored *OrderWithItems) ([]DocumentRef, error) {
	started := time.Now()
	docs, renderErr := s.renderer.Render(stored.Order, stored.Customer, stored.Items)

	var refs []DocumentRef
	var storeErr error
	for _, doc := range docs {
		if _, err := s.store.Put(ctx, doc.Filename, doc.Bytes); err != nil {
			s.log.Error(ctx, "store document", err)
			if storeErr == nil {
				storeErr = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store document")
			}
			continue
		}
		s.metrics.IncDocument(string(doc.ItemType))
		s.metrics.ObserveRender(string(doc.ItemType), time.Since(started))
		refs = append(refs, DocumentRef{
			ItemType:   doc.ItemType,
			Filename:   doc.Filename,
			GroupTotal: doc.GroupTotal,
		})
	}

	if len(refs) > 0 {
		if err := s.repo.UpdateOrderDocumentPath(ctx, stored.Order.ID, refs[0].Filename); err != nil {
			s.log.Error(ctx, "record document path", err)
			if storeErr == nil {
				storeErr = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record document path")
			}
		}
	}

	if renderErr != nil {
		s.log.Error(ctx, "render documents", renderErr)
		return refs, renderErr
	}
	return refs, storeErr
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderWithItems, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	return s.repo.GetOrderWithItems(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return rows, nil
}

// buildItemRows converts validated inputs into persistence rows with the
// variant payload serialized and the shared columns split out.
func buildItemRows(orderID uuid.UUID, inputs []items.ItemInput) ([]models.OrderItem, error) {
	rows := make([]models.OrderItem, 0, len(inputs))
	for i := range inputs {
		payload, err := inputs[i].Payload()
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err,
				fmt.Sprintf("serialize item %d", i))
		}
		rows = append(rows, models.OrderItem{
			OrderID:  orderID,
			ItemType: inputs[i].ItemType,
			ItemData: payload,
			Quantity: inputs[i].Quantity,
			Price:    inputs[i].Price,
			Position: i,
		})
	}
	return rows, nil
}

// validationError folds collected field errors into one coded error whose
// details list every failing path.
func validationError(fieldErrs []items.FieldError) error {
	fields := make([]map[string]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, map[string]string{
			"field":   fe.Field,
			"message": fe.Message,
		})
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "order validation failed").
		WithDetails(map[string]any{"fields": fields})
}

func isNotFound(err error) bool {
	return db.IsNotFound(err) || pkgerrors.IsCode(err, pkgerrors.CodeNotFound)
}
