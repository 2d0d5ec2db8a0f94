package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

// Service despacha gerações de relatório contra o integrador POS e guarda o
// último resultado carregado. Cada despacho recebe um número de sequência
// monotônico; uma resposta que chega depois de um despacho mais novo é
// descartada, garantindo last-request-wins mesmo com respostas fora de ordem.
type Service struct {
	generator ReportGenerator
	now       func() time.Time

	mu      sync.Mutex
	seq     uint64
	current *domain.Report
	state   State
}

func NewService(generator ReportGenerator) *Service {
	return &Service{
		generator: generator,
		now:       time.Now,
		state:     StateIdle,
	}
}

func (s *Service) Generate(ctx context.Context, req Request) (*domain.Report, error) {
	if !req.Kind.Valid() {
		return nil, ErrUnknownKind
	}

	period := req.Preset.Apply(req.Period, s.now())
	params := BuildParams(req.Kind, period, req.Filters)

	s.mu.Lock()
	s.seq++
	dispatched := s.seq
	s.state = StateLoading
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"report_kind": req.Kind,
		"sequence":    dispatched,
		"params":      params,
	}).Debug("reports: dispatching report generation")

	report, err := s.generator.GenerateReport(ctx, req.Kind, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if dispatched != s.seq {
		// Resposta atrasada: um despacho mais novo já aconteceu. O resultado
		// (ou a falha) não pode sobrescrever o estado corrente.
		logrus.WithFields(logrus.Fields{
			"report_kind": req.Kind,
			"sequence":    dispatched,
			"latest":      s.seq,
		}).Info("reports: discarding stale report response")
		return s.current, nil
	}

	if err != nil {
		// Falha mantém o relatório anterior intacto; a causa fica no log e o
		// chamador recebe um erro genérico por categoria de operação.
		logrus.WithFields(logrus.Fields{
			"report_kind": req.Kind,
			"error":       err.Error(),
		}).Error("reports: report generation failed")
		s.state = StateFailed
		return nil, errors.Wrap(ErrGeneration, err.Error())
	}

	s.current = report
	s.state = StateLoaded
	return report, nil
}

func (s *Service) Current() (*domain.Report, State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.state
}

func (s *Service) ExportCSV() (*Export, error) {
	report, _ := s.Current()
	if report == nil {
		return nil, ErrNothingToExport
	}

	return ExportReportCSV(report, s.now()), nil
}
