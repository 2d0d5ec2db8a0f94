package domain

// Product representa um produto do cardápio. Janela de disponibilidade vazia
// significa disponível 24 horas.
type Product struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	CategoryID     int     `json:"category_id"`
	IsActive       *bool   `json:"is_active,omitempty"`
	StockQuantity  *int    `json:"stock_quantity,omitempty"`
	AvailableFrom  string  `json:"available_from,omitempty"`
	AvailableUntil string  `json:"available_until,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// ProductInput é o payload de criação/atualização de produto.
type ProductInput struct {
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	CategoryID     int     `json:"category_id"`
	IsActive       *bool   `json:"is_active,omitempty"`
	StockQuantity  *int    `json:"stock_quantity,omitempty"`
	AvailableFrom  string  `json:"available_from,omitempty"`
	AvailableUntil string  `json:"available_until,omitempty"`
}

// ProductImage carrega os bytes de uma imagem de produto retornada pelo POS.
type ProductImage struct {
	ProductID   int
	ContentType string
	Data        []byte
}
