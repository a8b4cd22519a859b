// Package reconcile maps remote cart payloads onto the local cart shape.
// The remote service is the source of truth: totals and checkout URLs are
// taken verbatim, and partial payloads degrade to empty values instead of
// failing.
package reconcile

import (
	"log"
	"strconv"

	"storefront/internal/domain"
	"storefront/internal/storefront"
)

// Cart converts a remote cart payload into a domain cart. The total is never
// recomputed from lines; the remote cost may include taxes or discounts that
// are invisible line-by-line.
func Cart(payload *storefront.CartPayload, logger *log.Logger) domain.Cart {
	if payload == nil {
		return domain.Cart{Lines: []domain.CartLine{}}
	}

	cart := domain.Cart{Lines: []domain.CartLine{}}
	if payload.ID != "" {
		id := payload.ID
		cart.ID = &id
	}
	if payload.CheckoutURL != "" {
		u := payload.CheckoutURL
		cart.CheckoutURL = &u
	}
	if payload.Cost != nil {
		cart.Total = money(payload.Cost.TotalAmount, logger)
	}
	if payload.Lines != nil {
		for _, edge := range payload.Lines.Edges {
			cart.Lines = append(cart.Lines, line(edge.Node, logger))
		}
	}
	return cart
}

// Variant converts a remote variant payload, preserving every raw
// availability field for later validation.
func Variant(payload storefront.VariantPayload, logger *log.Logger) domain.Variant {
	return domain.Variant{
		ID:                  payload.ID,
		Title:               payload.Title,
		Price:               money(payload.Price, logger),
		AvailableForSale:    payload.AvailableForSale,
		InventoryManagement: payload.InventoryManagement,
		InventoryPolicy:     payload.InventoryPolicy,
		QuantityAvailable:   payload.QuantityAvailable,
	}
}

// Product converts a remote catalog product.
func Product(payload storefront.ProductPayload, logger *log.Logger) domain.Product {
	p := domain.Product{
		ID:          payload.ID,
		Handle:      payload.Handle,
		Title:       payload.Title,
		Description: payload.Description,
	}
	if payload.FeaturedImage != nil {
		p.ImageURL = payload.FeaturedImage.URL
	}
	for _, edge := range payload.Variants.Edges {
		p.Variants = append(p.Variants, Variant(edge.Node, logger))
	}
	return p
}

func line(payload storefront.LinePayload, logger *log.Logger) domain.CartLine {
	variant := Variant(payload.Merchandise, logger)
	l := domain.CartLine{
		ID:           payload.ID,
		VariantID:    payload.Merchandise.ID,
		Quantity:     payload.Quantity,
		ProductTitle: payload.Merchandise.Product.Title,
		UnitPrice:    variant.Price,
		Variant:      &variant,
	}
	if payload.Merchandise.Product.FeaturedImage != nil {
		l.ImageURL = payload.Merchandise.Product.FeaturedImage.URL
	}
	return l
}

// money parses a remote decimal string. A malformed amount degrades to zero
// like every other partial payload, but the original value is logged so the
// zero can be traced back to the response that produced it.
func money(payload storefront.MoneyPayload, logger *log.Logger) domain.Money {
	if payload.Amount == "" {
		// Absent, not malformed; partial payloads omit prices routinely.
		return domain.Money{Currency: payload.CurrencyCode}
	}
	amount, err := strconv.ParseFloat(payload.Amount, 64)
	if err != nil {
		logger.Printf("unparseable remote amount %q, using 0: %v", payload.Amount, err)
		amount = 0
	}
	return domain.Money{Amount: amount, Currency: payload.CurrencyCode}
}
