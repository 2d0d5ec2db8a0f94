package reporting

import (
	"context"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

// ReportGenerator é o que o serviço de relatórios precisa do integrador POS.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, kind domain.ReportKind, params map[string]string) (*domain.Report, error)
}

// Reporter é a interface exposta para a camada HTTP.
type Reporter interface {
	// Generate despacha a geração de um relatório e devolve o resultado
	// corrente (ver a regra de descarte de respostas atrasadas no Service).
	Generate(ctx context.Context, req Request) (*domain.Report, error)

	// Current devolve o último relatório carregado, se houver, e o estado.
	Current() (*domain.Report, State)

	// ExportCSV serializa o relatório corrente em CSV.
	ExportCSV() (*Export, error)
}

// Request reúne o tipo, o período e os filtros de uma geração de relatório.
// Preset diferente de custom deriva o período antes do despacho.
type Request struct {
	Kind    domain.ReportKind
	Preset  domain.Preset
	Period  domain.ReportPeriod
	Filters domain.ReportFilters
}

// State é o estado do painel: Idle → Loading → {Loaded | Failed}, todos
// reentrantes em Loading a cada novo disparo.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)
