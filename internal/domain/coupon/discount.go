package coupon

import "auction-market/internal/pkg/errs"

var (
	ErrInvalidDiscountType    = errs.New("invalid discount type")
	ErrInvalidPercentValue    = errs.New("percent discount value must be greater than 0 and less than 1")
	ErrInvalidFixedValue      = errs.New("fixed discount value must be greater than 0")
	ErrDiscountValueRequired  = errs.New("discount value is required for this type")
	ErrDiscountNotComputable  = errs.New("discount cannot be computed from the product total alone")
)

type DiscountType string

const (
	Percent      DiscountType = "PERCENT"
	Fixed        DiscountType = "FIXED"
	FreeShipping DiscountType = "FREESHIP"
	BuyOneGetOne DiscountType = "BUY_ONE_GET_ONE"
)

// Discount is a tagged union over the four discount kinds. Only PERCENT and
// FIXED carry a value; the value-less kinds are resolved by the settlement
// flow (shipping fee, giveaway item) rather than by arithmetic here.
type Discount struct {
	kind  DiscountType
	value float64
}

func NewDiscount(kind DiscountType, value *float64) (Discount, error) {
	switch kind {
	case Percent:
		if value == nil {
			return Discount{}, ErrDiscountValueRequired
		}
		if *value <= 0 || *value >= 1 {
			return Discount{}, ErrInvalidPercentValue
		}
		return Discount{kind: Percent, value: *value}, nil
	case Fixed:
		if value == nil {
			return Discount{}, ErrDiscountValueRequired
		}
		if *value <= 0 {
			return Discount{}, ErrInvalidFixedValue
		}
		return Discount{kind: Fixed, value: *value}, nil
	case FreeShipping, BuyOneGetOne:
		// Any supplied value is discarded.
		return Discount{kind: kind}, nil
	}
	return Discount{}, ErrInvalidDiscountType
}

func (d Discount) Kind() DiscountType {
	return d.kind
}

// Value returns the discount parameter for the kinds that carry one, nil
// otherwise.
func (d Discount) Value() *float64 {
	switch d.kind {
	case Percent, Fixed:
		v := d.value
		return &v
	}
	return nil
}

// AmountFor computes the discount against the product total for the purely
// arithmetic kinds. FREESHIP and BUY_ONE_GET_ONE depend on order state and
// return ErrDiscountNotComputable.
func (d Discount) AmountFor(productTotal float64) (float64, error) {
	switch d.kind {
	case Percent:
		// The value is the fraction taken off the total: 0.2 means 20% off.
		return productTotal * d.value, nil
	case Fixed:
		if d.value > productTotal {
			return productTotal, nil
		}
		return d.value, nil
	}
	return 0, ErrDiscountNotComputable
}
