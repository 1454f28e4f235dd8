package model

// Item is a single line of an order: what to pick, where, and how many.
// Found is the only field that changes after the order is created.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
	Found    bool   `json:"found"`
}

// ItemInput is the caller-supplied shape of an item before it gets an ID.
type ItemInput struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// NormalizeQuantity returns q, or 1 when q is not positive.
func NormalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
