// Package validation derives human-readable blocking reasons from cart state.
// It is pure: the same functions run on cached state to drive the checkout
// control and on freshly reconciled state right before redirect.
package validation

import (
	"fmt"
	"strings"

	"storefront/internal/domain"
)

const (
	// PolicyContinue permits selling past available stock.
	PolicyContinue = "CONTINUE"
	// PolicyDeny forbids selling past available stock.
	PolicyDeny = "DENY"
)

// IsAvailable decides whether a variant can be purchased. The table fails
// open: when the fields do not conclusively say "no", the answer is yes,
// because the remote checkout performs the final stock enforcement.
func IsAvailable(v *domain.Variant) bool {
	switch {
	case v == nil:
		return false
	case v.InventoryManagement == "":
		// Untracked inventory is always purchasable.
		return true
	case v.InventoryPolicy == PolicyContinue:
		return true
	case v.AvailableForSale != nil && *v.AvailableForSale:
		return true
	case v.InventoryPolicy == PolicyDeny && v.AvailableForSale != nil && !*v.AvailableForSale:
		return false
	default:
		return true
	}
}

// Validate returns blocking reasons for the cart, in priority order. An empty
// result means checkout is allowed. All reasons are additive; callers show
// every message, never just the first.
func Validate(cart domain.Cart) []string {
	if cart.Empty() {
		// An empty cart has no meaningful total; this is the only reason.
		return []string{"cart is empty"}
	}

	var messages []string
	var unavailable []string
	for _, line := range cart.Lines {
		if !IsAvailable(line.Variant) {
			name := line.ProductTitle
			if name == "" {
				name = line.VariantID
			}
			unavailable = append(unavailable, name)
		}
	}
	if len(unavailable) > 0 {
		messages = append(messages, fmt.Sprintf("items unavailable: %s", strings.Join(unavailable, ", ")))
	}

	if cart.Total.Amount <= 0 {
		messages = append(messages, "total must be positive")
	}

	return messages
}
