package httpserver

import (
	"storefront/internal/domain"
	"storefront/internal/validation"
)

// API response shapes for the cart. Availability is derived per line at
// render time; it is never part of the stored cart.

type moneyView struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type lineView struct {
	ID           string    `json:"id"`
	VariantID    string    `json:"variantId"`
	Quantity     int       `json:"quantity"`
	ProductTitle string    `json:"productTitle"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	UnitPrice    moneyView `json:"unitPrice"`
	Available    bool      `json:"available"`
}

type cartView struct {
	ID          *string    `json:"id"`
	Lines       []lineView `json:"lines"`
	Total       moneyView  `json:"total"`
	CheckoutURL *string    `json:"checkoutUrl"`
	Messages    []string   `json:"messages"`
	CanCheckout bool       `json:"canCheckout"`
}

type productView struct {
	ID          string        `json:"id"`
	Handle      string        `json:"handle"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Variants    []variantView `json:"variants"`
}

type variantView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Price     moneyView `json:"price"`
	Available bool      `json:"available"`
}

func toCartView(cart domain.Cart, messages []string) cartView {
	if messages == nil {
		messages = []string{}
	}
	lines := make([]lineView, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, lineView{
			ID:           l.ID,
			VariantID:    l.VariantID,
			Quantity:     l.Quantity,
			ProductTitle: l.ProductTitle,
			ImageURL:     l.ImageURL,
			UnitPrice:    toMoneyView(l.UnitPrice),
			Available:    validation.IsAvailable(l.Variant),
		})
	}
	return cartView{
		ID:          cart.ID,
		Lines:       lines,
		Total:       toMoneyView(cart.Total),
		CheckoutURL: cart.CheckoutURL,
		Messages:    messages,
		CanCheckout: len(messages) == 0,
	}
}

func toProductView(p domain.Product) productView {
	variants := make([]variantView, 0, len(p.Variants))
	for i := range p.Variants {
		v := p.Variants[i]
		variants = append(variants, variantView{
			ID:        v.ID,
			Title:     v.Title,
			Price:     toMoneyView(v.Price),
			Available: validation.IsAvailable(&v),
		})
	}
	return productView{
		ID:          p.ID,
		Handle:      p.Handle,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Variants:    variants,
	}
}

func toMoneyView(m domain.Money) moneyView {
	return moneyView{Amount: m.Amount, Currency: m.Currency}
}
