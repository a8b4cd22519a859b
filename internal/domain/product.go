package domain

// Product is a catalog entry fetched from the remote platform. Products are
// never stored locally; this is a pass-through shape for listing pages.
type Product struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}
