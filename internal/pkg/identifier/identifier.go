package identifier

import (
	"context"
	"strings"

	"auction-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Entity IDs are opaque strings with a human-readable prefix and a random
// uppercase hex suffix, e.g. ORD1A2B3C4D5E.
const (
	OrderPrefix      = "ORD"
	CouponPrefix     = "COUP"
	ProductPrefix    = "PROD"
	UserCouponPrefix = "UC"

	orderSuffixLen  = 10
	couponSuffixLen = 8
)

const maxAttempts = 5

// Exists reports whether an ID is already taken in the backing store.
type Exists func(ctx context.Context, id string) (bool, error)

func randomSuffix(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:n])
}

// New generates a prefixed ID and re-rolls on collision.
func New(ctx context.Context, prefix string, suffixLen int, exists Exists) (string, error) {
	for range maxAttempts {
		id := prefix + randomSuffix(suffixLen)
		taken, err := exists(ctx, id)
		if err != nil {
			return "", errs.Wrap(err, "failed to check id collision")
		}
		if !taken {
			return id, nil
		}
	}
	return "", errs.New("exhausted id generation attempts")
}

func NewOrderID(ctx context.Context, exists Exists) (string, error) {
	return New(ctx, OrderPrefix, orderSuffixLen, exists)
}

func NewProductID(ctx context.Context, exists Exists) (string, error) {
	return New(ctx, ProductPrefix, couponSuffixLen, exists)
}

func NewCouponID(ctx context.Context, exists Exists) (string, error) {
	return New(ctx, CouponPrefix, couponSuffixLen, exists)
}

func NewUserCouponID(ctx context.Context, exists Exists) (string, error) {
	return New(ctx, UserCouponPrefix, orderSuffixLen, exists)
}
