package model

// Template is a reusable stencil of items used to pre-fill a new order.
type Template struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description"`
	Items       []ItemInput `json:"items" yaml:"items"`
}

// Draft is an unsaved order body that the admin edits before creating it.
type Draft struct {
	Title string      `json:"title"`
	Items []ItemInput `json:"items"`
}

// Draft copies the template into a new draft titled after the template.
func (t *Template) Draft() Draft {
	items := make([]ItemInput, len(t.Items))
	copy(items, t.Items)
	return Draft{Title: t.Name, Items: items}
}
