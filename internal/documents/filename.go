package documents

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/printshop-backend/pkg/enums"
)

// Filename builds the deterministic artifact name for one item-type group:
// order_<ref>_<itemType>_<customer>.pdf. Regenerating the same order always
// targets the same names.
func Filename(orderID uuid.UUID, itemType enums.ItemType, customerName string) string {
	return fmt.Sprintf("order_%s_%s_%s.pdf", OrderRef(orderID), itemType, sanitize(customerName))
}

// OrderRef is the short human-facing reference for an order: the first eight
// hex characters of its UUID.
func OrderRef(orderID uuid.UUID) string {
	return strings.ReplaceAll(orderID.String(), "-", "")[:8]
}

// sanitize lowercases the name and collapses every non-alphanumeric rune to
// an underscore so the result is safe on any filesystem.
func sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
