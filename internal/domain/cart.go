package domain

// Money is a decimal amount with its ISO currency code, as returned by the
// remote platform.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Variant carries the raw availability fields from the remote platform.
// Availability itself is derived at validation time, never stored.
type Variant struct {
	ID                  string `json:"id"`
	Title               string `json:"title,omitempty"`
	Price               Money  `json:"price"`
	AvailableForSale    *bool  `json:"availableForSale,omitempty"`
	InventoryManagement string `json:"inventoryManagement,omitempty"`
	InventoryPolicy     string `json:"inventoryPolicy,omitempty"`
	QuantityAvailable   *int   `json:"quantityAvailable,omitempty"`
}

type CartLine struct {
	ID           string   `json:"id"`
	VariantID    string   `json:"variantId"`
	Quantity     int      `json:"quantity"`
	ProductTitle string   `json:"productTitle"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	UnitPrice    Money    `json:"unitPrice"`
	Variant      *Variant `json:"variant,omitempty"`
}

// Cart is the local view of the remote cart. ID and CheckoutURL stay nil until
// the remote service has created the cart. Line order follows the server
// response; Total is always the remote-declared value, never a local sum.
type Cart struct {
	ID          *string    `json:"id"`
	Lines       []CartLine `json:"lines"`
	Total       Money      `json:"total"`
	CheckoutURL *string    `json:"checkoutUrl"`
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// LineByID returns the line with the given remote-issued id, or nil.
func (c Cart) LineByID(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}
