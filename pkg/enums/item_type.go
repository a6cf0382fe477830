package enums

// ItemType discriminates the closed set of order line item variants.
type ItemType string

const (
	ItemTypeBox      ItemType = "box"
	ItemTypeEnvelope ItemType = "envelope"
	ItemTypeBag      ItemType = "bag"
)

// ItemTypes returns every known type in the fixed rendering order.
func ItemTypes() []ItemType {
	return []ItemType{ItemTypeBox, ItemTypeEnvelope, ItemTypeBag}
}

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeBox, ItemTypeEnvelope, ItemTypeBag:
		return true
	default:
		return false
	}
}

// Title returns the production document heading for the type.
func (t ItemType) Title() string {
	switch t {
	case ItemTypeBox:
		return "BOX ORDER"
	case ItemTypeEnvelope:
		return "ENVELOPE ORDER"
	case ItemTypeBag:
		return "BAG ORDER"
	default:
		return "ORDER"
	}
}
