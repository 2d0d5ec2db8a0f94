package reporting

import "errors"

// Erros específicos do contexto de relatórios
var (
	ErrUnknownKind     = errors.New("tipo de relatório desconhecido")
	ErrNothingToExport = errors.New("nenhum relatório carregado para exportar")
	ErrGeneration      = errors.New("erro ao gerar relatório")
)
