package items

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/printshop-backend/pkg/enums"
)

const minDimension = 0.1

// Validate checks the variant's base-required fields first, then the
// conditional guards over the already-decoded siblings. All failures are
// collected; each carries the full field path built from prefix (for
// example "items[2].envelopeHeight").
func (i ItemInput) Validate(prefix string) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: prefix + "." + field, Message: message})
	}

	if !i.ItemType.Valid() {
		add("itemType", fmt.Sprintf("unknown item type %q", i.ItemType))
		return errs
	}

	switch i.ItemType {
	case enums.ItemTypeBox:
		errs = append(errs, i.Box.validate(prefix)...)
	case enums.ItemTypeEnvelope:
		errs = append(errs, i.Envelope.validate(prefix)...)
	case enums.ItemTypeBag:
		errs = append(errs, i.Bag.validate(prefix)...)
	}

	if !i.quantitySet {
		add("quantity", "quantity is required")
	} else if !i.quantityIntegral || i.Quantity <= 0 {
		add("quantity", "quantity must be a positive integer")
	}

	if !i.priceSet {
		add("price", "price is required")
	} else if i.Price.LessThan(decimal.Zero) {
		add("price", "price must be non-negative")
	}

	return errs
}

func (s *BoxSpec) validate(prefix string) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: prefix + "." + field, Message: message})
	}
	if s == nil {
		add("itemType", "box fields missing")
		return errs
	}

	if s.BoxType == "" {
		add("boxType", "box type is required")
	}
	if s.Length < minDimension {
		add("length", "length must be at least 0.1")
	}
	if s.Breadth < minDimension {
		add("breadth", "breadth must be at least 0.1")
	}
	if s.Height < minDimension {
		add("height", "height must be at least 0.1")
	}
	if s.PrintType == "" {
		add("printType", "print type is required")
		return errs
	}

	if s.RequiresColor() && s.Color == "" {
		add("color", `color is required when printType is "Plain"`)
	}
	if s.RequiresDetails() && s.Details == "" {
		add("details", `details is required when printType is "Printed"`)
	}
	return errs
}

func (s *EnvelopeSpec) validate(prefix string) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: prefix + "." + field, Message: message})
	}
	if s == nil {
		add("itemType", "envelope fields missing")
		return errs
	}

	if s.EnvelopeSize == "" {
		add("envelopeSize", "envelope size is required")
	}
	if s.EnvelopePrintType == "" {
		add("envelopePrintType", "print type is required")
	}

	if s.RequiresDimensions() {
		if s.EnvelopeHeight == nil || *s.EnvelopeHeight < minDimension {
			add("envelopeHeight", `envelope height is required when envelopeSize is "Other"`)
		}
		if s.EnvelopeWidth == nil || *s.EnvelopeWidth < minDimension {
			add("envelopeWidth", `envelope width is required when envelopeSize is "Other"`)
		}
	}
	if s.RequiresPrintMethod() && s.EnvelopePrintMethod == "" {
		add("envelopePrintMethod", `print method is required when envelopePrintType is "Print"`)
	}
	if s.RequiresCustomPrint() && s.EnvelopeCustomPrint == "" {
		add("envelopeCustomPrint", `custom print is required when envelopePrintMethod is "Other"`)
	}
	return errs
}

func (s *BagSpec) validate(prefix string) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: prefix + "." + field, Message: message})
	}
	if s == nil {
		add("itemType", "bag fields missing")
		return errs
	}

	if s.BagSize == "" {
		add("bagSize", "bag size is required")
	}
	switch s.DoreType {
	case "":
		add("doreType", "handle specification is required")
	case DoreTypeRope, DoreTypeRibbon, DoreTypeNone:
	default:
		add("doreType", `handle specification must be "Rope", "Ribbon" or "None"`)
	}
	if s.BagPrintType == "" {
		add("bagPrintType", "print type is required")
	}

	if s.RequiresDimensions() {
		if s.BagHeight == nil || *s.BagHeight < minDimension {
			add("bagHeight", `bag height is required when bagSize is "Other"`)
		}
		if s.BagWidth == nil || *s.BagWidth < minDimension {
			add("bagWidth", `bag width is required when bagSize is "Other"`)
		}
		if s.BagGusset == nil || *s.BagGusset < minDimension {
			add("bagGusset", `bag gusset is required when bagSize is "Other"`)
		}
	}
	if s.RequiresHandleColor() && s.HandleColor == "" {
		add("handleColor", `handle color is required when doreType is "Rope" or "Ribbon"`)
	}
	if s.RequiresCustomHandleColor() && s.CustomHandleColor == "" {
		add("customHandleColor", `custom handle color is required when handleColor is "Other"`)
	}
	if s.RequiresPrintMethod() && s.PrintMethod == "" {
		add("printMethod", `print method is required when bagPrintType is "Print"`)
	}
	if s.RequiresLamination() && s.LaminationType == "" {
		add("laminationType", `lamination type is required when printMethod is "Multi Color"`)
	}
	return errs
}
