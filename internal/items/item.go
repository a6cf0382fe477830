package items

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/printshop-backend/pkg/enums"
)

// FieldError names a single failed validation rule by full field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ItemInput is the tagged union form a line item arrives in. Exactly one of
// Box, Envelope or Bag is populated, selected by ItemType.
type ItemInput struct {
	ItemType enums.ItemType
	Quantity int
	Price    decimal.Decimal

	Box      *BoxSpec
	Envelope *EnvelopeSpec
	Bag      *BagSpec

	quantitySet      bool
	quantityIntegral bool
	priceSet         bool
}

type itemHead struct {
	ItemType enums.ItemType   `json:"itemType"`
	Quantity *float64         `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// UnmarshalJSON dispatches on the itemType discriminator and decodes the
// matching variant field set. An unknown discriminator is not a decode
// error; Validate reports it so all problems surface together.
func (i *ItemInput) UnmarshalJSON(data []byte) error {
	var head itemHead
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	i.ItemType = head.ItemType
	if head.Quantity != nil {
		i.quantitySet = true
		if *head.Quantity == math.Trunc(*head.Quantity) {
			i.quantityIntegral = true
			i.Quantity = int(*head.Quantity)
		}
	}
	if head.Price != nil {
		i.priceSet = true
		i.Price = *head.Price
	}

	switch head.ItemType {
	case enums.ItemTypeBox:
		i.Box = &BoxSpec{}
		return json.Unmarshal(data, i.Box)
	case enums.ItemTypeEnvelope:
		i.Envelope = &EnvelopeSpec{}
		return json.Unmarshal(data, i.Envelope)
	case enums.ItemTypeBag:
		i.Bag = &BagSpec{}
		return json.Unmarshal(data, i.Bag)
	default:
		return nil
	}
}

// Payload serializes only the variant-specific fields: no discriminator, no
// quantity, no price. This is the stored item_data form.
func (i ItemInput) Payload() (json.RawMessage, error) {
	switch i.ItemType {
	case enums.ItemTypeBox:
		if i.Box == nil {
			return nil, fmt.Errorf("box payload missing")
		}
		return json.Marshal(i.Box)
	case enums.ItemTypeEnvelope:
		if i.Envelope == nil {
			return nil, fmt.Errorf("envelope payload missing")
		}
		return json.Marshal(i.Envelope)
	case enums.ItemTypeBag:
		if i.Bag == nil {
			return nil, fmt.Errorf("bag payload missing")
		}
		return json.Marshal(i.Bag)
	default:
		return nil, fmt.Errorf("unknown item type %q", i.ItemType)
	}
}

// LineTotal is quantity times unit price, exact.
func (i ItemInput) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DecodeBox strictly decodes a stored box payload. Fields that belong to a
// different variant fail the decode, upholding the payload/type invariant.
func DecodeBox(data []byte) (*BoxSpec, error) {
	var s BoxSpec
	if err := strictDecode(data, &s); err != nil {
		return nil, fmt.Errorf("box payload: %w", err)
	}
	return &s, nil
}

// DecodeEnvelope strictly decodes a stored envelope payload.
func DecodeEnvelope(data []byte) (*EnvelopeSpec, error) {
	var s EnvelopeSpec
	if err := strictDecode(data, &s); err != nil {
		return nil, fmt.Errorf("envelope payload: %w", err)
	}
	return &s, nil
}

// DecodeBag strictly decodes a stored bag payload.
func DecodeBag(data []byte) (*BagSpec, error) {
	var s BagSpec
	if err := strictDecode(data, &s); err != nil {
		return nil, fmt.Errorf("bag payload: %w", err)
	}
	return &s, nil
}

func strictDecode(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}
