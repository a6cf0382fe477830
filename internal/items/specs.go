package items

// Guard values shared by validation and rendering. The conditional-field
// rules below mirror the order intake forms: a dependent field is required
// exactly when its guard value is selected.
const (
	BoxPrintTypePlain   = "Plain"
	BoxPrintTypePrinted = "Printed"

	SizeOther = "Other"

	PrintTypePrint        = "Print"
	PrintMethodOther      = "Other"
	PrintMethodMultiColor = "Multi Color"

	DoreTypeRope   = "Rope"
	DoreTypeRibbon = "Ribbon"
	DoreTypeNone   = "None"

	HandleColorOther = "Other"
)

// BoxSpec carries the box variant fields. Color applies to plain boxes,
// Details to printed ones; the inactive field is inert for rendering.
type BoxSpec struct {
	BoxType   string  `json:"boxType"`
	Length    float64 `json:"length"`
	Breadth   float64 `json:"breadth"`
	Height    float64 `json:"height"`
	PrintType string  `json:"printType"`
	Color     string  `json:"color,omitempty"`
	Details   string  `json:"details,omitempty"`
}

// EnvelopeSpec carries the envelope variant fields. Custom dimensions apply
// only to the "Other" size.
type EnvelopeSpec struct {
	EnvelopeSize        string   `json:"envelopeSize"`
	EnvelopeHeight      *float64 `json:"envelopeHeight,omitempty"`
	EnvelopeWidth       *float64 `json:"envelopeWidth,omitempty"`
	EnvelopePrintType   string   `json:"envelopePrintType"`
	EnvelopePrintMethod string   `json:"envelopePrintMethod,omitempty"`
	EnvelopeCustomPrint string   `json:"envelopeCustomPrint,omitempty"`
}

// BagSpec carries the bag variant fields.
type BagSpec struct {
	BagSize           string   `json:"bagSize"`
	BagHeight         *float64 `json:"bagHeight,omitempty"`
	BagWidth          *float64 `json:"bagWidth,omitempty"`
	BagGusset         *float64 `json:"bagGusset,omitempty"`
	DoreType          string   `json:"doreType"`
	HandleColor       string   `json:"handleColor,omitempty"`
	CustomHandleColor string   `json:"customHandleColor,omitempty"`
	BagPrintType      string   `json:"bagPrintType"`
	PrintMethod       string   `json:"printMethod,omitempty"`
	LaminationType    string   `json:"laminationType,omitempty"`
}

// RequiresColor reports whether the plain-print color guard holds.
func (s BoxSpec) RequiresColor() bool {
	return s.PrintType == BoxPrintTypePlain
}

// RequiresDetails reports whether the printed-details guard holds.
func (s BoxSpec) RequiresDetails() bool {
	return s.PrintType == BoxPrintTypePrinted
}

// RequiresDimensions reports whether the custom-size guard holds.
func (s EnvelopeSpec) RequiresDimensions() bool {
	return s.EnvelopeSize == SizeOther
}

// RequiresPrintMethod reports whether the print-method guard holds.
func (s EnvelopeSpec) RequiresPrintMethod() bool {
	return s.EnvelopePrintType == PrintTypePrint
}

// RequiresCustomPrint reports whether the custom-print guard holds.
func (s EnvelopeSpec) RequiresCustomPrint() bool {
	return s.RequiresPrintMethod() && s.EnvelopePrintMethod == PrintMethodOther
}

// RequiresDimensions reports whether the custom-size guard holds.
func (s BagSpec) RequiresDimensions() bool {
	return s.BagSize == SizeOther
}

// RequiresHandleColor reports whether the handle-color guard holds.
func (s BagSpec) RequiresHandleColor() bool {
	return s.DoreType == DoreTypeRope || s.DoreType == DoreTypeRibbon
}

// RequiresCustomHandleColor reports whether the custom handle color guard holds.
func (s BagSpec) RequiresCustomHandleColor() bool {
	return s.RequiresHandleColor() && s.HandleColor == HandleColorOther
}

// RequiresPrintMethod reports whether the print-method guard holds.
func (s BagSpec) RequiresPrintMethod() bool {
	return s.BagPrintType == PrintTypePrint
}

// RequiresLamination reports whether the lamination guard holds.
func (s BagSpec) RequiresLamination() bool {
	return s.RequiresPrintMethod() && s.PrintMethod == PrintMethodMultiColor
}
