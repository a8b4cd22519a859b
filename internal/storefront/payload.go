package storefront

// Wire shapes for the remote GraphQL responses. Amounts arrive as decimal
// strings; conversion to domain types happens in the reconcile package.

type MoneyPayload struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type ImagePayload struct {
	URL string `json:"url"`
}

type ProductRefPayload struct {
	Title         string        `json:"title"`
	FeaturedImage *ImagePayload `json:"featuredImage"`
}

// VariantPayload keeps every raw availability field the platform returns.
// Downstream validation depends on them even when they look redundant here.
type VariantPayload struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Price               MoneyPayload      `json:"price"`
	AvailableForSale    *bool             `json:"availableForSale"`
	InventoryManagement string            `json:"inventoryManagement"`
	InventoryPolicy     string            `json:"inventoryPolicy"`
	QuantityAvailable   *int              `json:"quantityAvailable"`
	Product             ProductRefPayload `json:"product"`
}

type LinePayload struct {
	ID          string         `json:"id"`
	Quantity    int            `json:"quantity"`
	Merchandise VariantPayload `json:"merchandise"`
}

type LineEdgePayload struct {
	Node LinePayload `json:"node"`
}

type CostPayload struct {
	TotalAmount MoneyPayload `json:"totalAmount"`
}

type CartPayload struct {
	ID          string       `json:"id"`
	CheckoutURL string       `json:"checkoutUrl"`
	Cost        *CostPayload `json:"cost"`
	Lines       *struct {
		Edges []LineEdgePayload `json:"edges"`
	} `json:"lines"`
}

type ProductPayload struct {
	ID            string        `json:"id"`
	Handle        string        `json:"handle"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	FeaturedImage *ImagePayload `json:"featuredImage"`
	Variants      struct {
		Edges []struct {
			Node VariantPayload `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}
