package documents

import (
	"encoding/json"
	"fmt"

	"github.com/angelmondragon/printshop-backend/internal/items"
	"github.com/angelmondragon/printshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
)

// detailLines expands a stored item payload into its production bullet
// lines. Conditional fields print only while their guard holds, so a stale
// value left behind by a form toggle never reaches the document.
func detailLines(itemType enums.ItemType, payload json.RawMessage) ([]string, error) {
	switch itemType {
	case enums.ItemTypeBox:
		spec, err := items.DecodeBox(payload)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeRender, err, "decode box payload")
		}
		return boxLines(*spec), nil
	case enums.ItemTypeEnvelope:
		spec, err := items.DecodeEnvelope(payload)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeRender, err, "decode envelope payload")
		}
		return envelopeLines(*spec), nil
	case enums.ItemTypeBag:
		spec, err := items.DecodeBag(payload)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeRender, err, "decode bag payload")
		}
		return bagLines(*spec), nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeRender,
			fmt.Sprintf("unknown item type %q", itemType))
	}
}

func boxLines(spec items.BoxSpec) []string {
	lines := []string{
		fmt.Sprintf("Box Type: %s", spec.BoxType),
		fmt.Sprintf("Dimensions: %s x %s x %s cm",
			formatDim(spec.Length), formatDim(spec.Breadth), formatDim(spec.Height)),
		fmt.Sprintf("Print Type: %s", spec.PrintType),
	}
	if spec.RequiresColor() && spec.Color != "" {
		lines = append(lines, fmt.Sprintf("Color: %s", spec.Color))
	}
	if spec.RequiresDetails() && spec.Details != "" {
		lines = append(lines, fmt.Sprintf("Print Details: %s", spec.Details))
	}
	return lines
}

func envelopeLines(spec items.EnvelopeSpec) []string {
	lines := []string{fmt.Sprintf("Size: %s", spec.EnvelopeSize)}
	if spec.RequiresDimensions() && spec.EnvelopeHeight != nil && spec.EnvelopeWidth != nil {
		lines = append(lines, fmt.Sprintf("Custom Dimensions: %s x %s cm",
			formatDim(*spec.EnvelopeHeight), formatDim(*spec.EnvelopeWidth)))
	}
	lines = append(lines, fmt.Sprintf("Print Type: %s", spec.EnvelopePrintType))
	if spec.RequiresPrintMethod() && spec.EnvelopePrintMethod != "" {
		lines = append(lines, fmt.Sprintf("Print Method: %s", spec.EnvelopePrintMethod))
		if spec.RequiresCustomPrint() && spec.EnvelopeCustomPrint != "" {
			lines = append(lines, fmt.Sprintf("Custom Print: %s", spec.EnvelopeCustomPrint))
		}
	}
	return lines
}

func bagLines(spec items.BagSpec) []string {
	lines := []string{fmt.Sprintf("Bag Size: %s", spec.BagSize)}
	if spec.RequiresDimensions() && spec.BagHeight != nil && spec.BagWidth != nil {
		dims := fmt.Sprintf("Custom Dimensions: %s x %s",
			formatDim(*spec.BagHeight), formatDim(*spec.BagWidth))
		if spec.BagGusset != nil {
			dims += fmt.Sprintf(" x %s", formatDim(*spec.BagGusset))
		}
		lines = append(lines, dims+" cm")
	}
	lines = append(lines, fmt.Sprintf("Handle Type: %s", spec.DoreType))
	if spec.RequiresHandleColor() && spec.HandleColor != "" {
		lines = append(lines, fmt.Sprintf("Handle Color: %s", spec.HandleColor))
		if spec.RequiresCustomHandleColor() && spec.CustomHandleColor != "" {
			lines = append(lines, fmt.Sprintf("Custom Handle Color: %s", spec.CustomHandleColor))
		}
	}
	lines = append(lines, fmt.Sprintf("Print Type: %s", spec.BagPrintType))
	if spec.RequiresPrintMethod() && spec.PrintMethod != "" {
		lines = append(lines, fmt.Sprintf("Print Method: %s", spec.PrintMethod))
		if spec.RequiresLamination() && spec.LaminationType != "" {
			lines = append(lines, fmt.Sprintf("Lamination: %s", spec.LaminationType))
		}
	}
	return lines
}

// formatDim prints a dimension without trailing zeros, matching how the
// intake forms echo them back.
func formatDim(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
