package domain

// Category representa uma categoria do cardápio mantida pelo núcleo do POS.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// CategoryInput é o payload de criação/atualização de categoria.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
