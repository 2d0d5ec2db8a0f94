package pos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/pkg/utils"
)

// ErrUnexpectedShape indica que o payload devolvido pelo POS não tem o
// formato esperado para o tipo de relatório solicitado.
var ErrUnexpectedShape = errors.New("payload do relatório não tem o formato esperado")

// Integrator converte os payloads crus do núcleo do POS nos tipos do domínio.
type Integrator interface {
	GenerateReport(ctx context.Context, kind domain.ReportKind, params map[string]string) (*domain.Report, error)
}

type POSIntegrator struct {
	cfg    *config.Config
	Client posclient.Client
}

func New(cfg *config.Config, client posclient.Client) *POSIntegrator {
	return &POSIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateReport consulta o relatório e decodifica o resultado no registro
// tipado do tipo solicitado. Payloads fora do formato são rejeitados.
func (s *POSIntegrator) GenerateReport(ctx context.Context, kind domain.ReportKind, params map[string]string) (*domain.Report, error) {
	body, err := s.Client.GetReport(ctx, kind, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"report_kind": kind,
			"error":       err.Error(),
		}).Error("reports: failed to fetch report from POS")
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("report_kind", kind).
			Debugf("reports: raw payload\n%s", utils.PrettyJson(body))
	}

	report, err := factoryReport(kind, body)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"report_kind": kind,
			"error":       err.Error(),
		}).Warn("reports: rejected report payload with unexpected shape")
		return nil, err
	}

	return report, nil
}
