package documents

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/angelmondragon/printshop-backend/pkg/config"
	"github.com/angelmondragon/printshop-backend/pkg/db/models"
	"github.com/angelmondragon/printshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
)

// Document is one rendered production document: the artifact bytes for one
// item-type group of an order plus its deterministic filename.
type Document struct {
	ItemType   enums.ItemType
	Filename   string
	Bytes      []byte
	GroupTotal decimal.Decimal
	ItemCount  int
}

// Engine renders production documents from a stored order. Byte output is
// deterministic for identical inputs and an identical clock.
type Engine struct {
	company string
	tagline string
	now     func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock pins the generated-at stamp, used by tests for byte-identical output.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine builds a layout engine with the configured letterhead.
func NewEngine(cfg config.DocumentsConfig, opts ...Option) *Engine {
	e := &Engine{
		company: cfg.CompanyName,
		tagline: cfg.Tagline,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type group struct {
	itemType enums.ItemType
	items    []models.OrderItem
}

// Render partitions items by type and emits one document per non-empty
// group. Groups render concurrently; the returned slice keeps the fixed
// box, envelope, bag order regardless of scheduling. A failed group never
// suppresses the others: successful documents are returned alongside the
// aggregated error.
func (e *Engine) Render(order models.Order, customer models.Customer, rows []models.OrderItem) ([]Document, error) {
	groups := partition(rows)
	if len(groups) == 0 {
		return nil, nil
	}

	results := make([]*Document, len(groups))
	failures := make([]error, len(groups))

	var wg sync.WaitGroup
	for idx := range groups {
		wg.Add(1)
		go func(idx int, g group) {
			defer wg.Done()
			doc, err := e.renderGroup(order, customer, g)
			if err != nil {
				failures[idx] = pkgerrors.Wrap(pkgerrors.CodeRender, err,
					fmt.Sprintf("render %s document", g.itemType)).
					WithDetails(map[string]any{"order_id": order.ID, "item_type": g.itemType})
				return
			}
			results[idx] = doc
		}(idx, groups[idx])
	}
	wg.Wait()

	var docs []Document
	var err error
	for idx := range groups {
		if failures[idx] != nil {
			err = multierr.Append(err, failures[idx])
			continue
		}
		docs = append(docs, *results[idx])
	}
	return docs, err
}

// partition splits the items by type preserving input order within each
// group; empty groups are skipped.
func partition(rows []models.OrderItem) []group {
	byType := make(map[enums.ItemType][]models.OrderItem, len(rows))
	for _, row := range rows {
		byType[row.ItemType] = append(byType[row.ItemType], row)
	}

	var groups []group
	for _, t := range enums.ItemTypes() {
		if len(byType[t]) == 0 {
			continue
		}
		groups = append(groups, group{itemType: t, items: byType[t]})
	}
	return groups
}

func (e *Engine) renderGroup(order models.Order, customer models.Customer, g group) (*Document, error) {
	blocks := make([]itemBlock, 0, len(g.items))
	total := decimal.Zero
	for _, row := range g.items {
		lines, err := detailLines(row.ItemType, row.ItemData)
		if err != nil {
			return nil, err
		}
		lineTotal := row.LineTotal()
		total = total.Add(lineTotal)
		blocks = append(blocks, itemBlock{
			details:   lines,
			quantity:  row.Quantity,
			unitPrice: row.Price,
			lineTotal: lineTotal,
		})
	}

	bytes, err := e.draw(order, customer, g.itemType, blocks, total)
	if err != nil {
		return nil, err
	}

	return &Document{
		ItemType:   g.itemType,
		Filename:   Filename(order.ID, g.itemType, customer.Name),
		Bytes:      bytes,
		GroupTotal: total,
		ItemCount:  len(g.items),
	}, nil
}
