package catalog

import "errors"

// Erros de validação do catálogo. Nenhuma chamada de rede acontece quando a
// entrada é rejeitada por um destes.
var (
	ErrNameRequired     = errors.New("nome é obrigatório")
	ErrInvalidPrice     = errors.New("preço deve ser maior que zero")
	ErrCategoryRequired = errors.New("selecione uma categoria")
	ErrImageNotFound    = errors.New("produto não possui imagem")
)
