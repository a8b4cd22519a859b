package validation

import (
	"reflect"
	"testing"

	"storefront/internal/domain"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestIsAvailableFailOpenTable(t *testing.T) {
	cases := []struct {
		name    string
		variant *domain.Variant
		want    bool
	}{
		{name: "no variant", variant: nil, want: false},
		{
			name:    "untracked inventory",
			variant: &domain.Variant{},
			want:    true,
		},
		{
			name: "oversell permitted",
			variant: &domain.Variant{
				InventoryManagement: "shopify",
				InventoryPolicy:     PolicyContinue,
				AvailableForSale:    boolPtr(false),
			},
			want: true,
		},
		{
			name: "deny and not for sale",
			variant: &domain.Variant{
				InventoryManagement: "shopify",
				InventoryPolicy:     PolicyDeny,
				AvailableForSale:    boolPtr(false),
				QuantityAvailable:   intPtr(0),
			},
			want: false,
		},
		{
			name: "deny but explicitly for sale",
			variant: &domain.Variant{
				InventoryManagement: "shopify",
				InventoryPolicy:     PolicyDeny,
				AvailableForSale:    boolPtr(true),
				QuantityAvailable:   intPtr(5),
			},
			want: true,
		},
		{
			name: "unrecognized combination fails open",
			variant: &domain.Variant{
				InventoryManagement: "shopify",
				InventoryPolicy:     "SOMETHING_NEW",
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAvailable(tc.variant); got != tc.want {
				t.Fatalf("IsAvailable(%+v) = %v, want %v", tc.variant, got, tc.want)
			}
		})
	}
}

func TestValidateEmptyCart(t *testing.T) {
	got := Validate(domain.Cart{})
	want := []string{"cart is empty"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected only the empty message, got %v", got)
	}
}

func TestValidateUnavailableLineAndZeroTotal(t *testing.T) {
	cart := domain.Cart{
		Lines: []domain.CartLine{
			{
				ProductTitle: "Tee",
				Quantity:     1,
				Variant: &domain.Variant{
					InventoryManagement: "shopify",
					InventoryPolicy:     PolicyDeny,
					AvailableForSale:    boolPtr(false),
				},
			},
		},
		Total: domain.Money{Amount: 0, Currency: "USD"},
	}

	got := Validate(cart)
	want := []string{"items unavailable: Tee", "total must be positive"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected both messages in order, got %v", got)
	}
}

func TestValidateJoinsUnavailableNames(t *testing.T) {
	deny := &domain.Variant{
		InventoryManagement: "shopify",
		InventoryPolicy:     PolicyDeny,
		AvailableForSale:    boolPtr(false),
	}
	cart := domain.Cart{
		Lines: []domain.CartLine{
			{ProductTitle: "Tee", Quantity: 1, Variant: deny},
			{ProductTitle: "Mug", Quantity: 1, Variant: deny},
		},
		Total: domain.Money{Amount: 15, Currency: "USD"},
	}

	got := Validate(cart)
	want := []string{"items unavailable: Tee, Mug"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected joined names, got %v", got)
	}
}

func TestValidateHealthyCart(t *testing.T) {
	cart := domain.Cart{
		Lines: []domain.CartLine{
			{ProductTitle: "Tee", Quantity: 1, Variant: &domain.Variant{}},
		},
		Total: domain.Money{Amount: 19.99, Currency: "USD"},
	}
	if got := Validate(cart); len(got) != 0 {
		t.Fatalf("expected no blocking reasons, got %v", got)
	}
}

func TestValidateFallsBackToVariantID(t *testing.T) {
	cart := domain.Cart{
		Lines: []domain.CartLine{
			{VariantID: "variant-9", Quantity: 1, Variant: nil},
		},
		Total: domain.Money{Amount: 5, Currency: "USD"},
	}
	got := Validate(cart)
	want := []string{"items unavailable: variant-9"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected variant id fallback, got %v", got)
	}
}
