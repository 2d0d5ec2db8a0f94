package reporting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Generate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := mocks.NewMockReportGenerator(ctrl)
	service := NewService(generator)

	report := &domain.Report{
		Kind:        domain.ReportTopProducts,
		TopProducts: &domain.TopProductsReport{},
	}

	generator.EXPECT().
		GenerateReport(gomock.Any(), domain.ReportTopProducts, map[string]string{"days": "7"}).
		Return(report, nil)

	result, err := service.Generate(context.Background(), Request{
		Kind:   domain.ReportTopProducts,
		Preset: domain.PresetCustom,
		Period: domain.ReportPeriod{Days: 7},
	})

	assert.NoError(t, err)
	assert.Equal(t, report, result)

	current, state := service.Current()
	assert.Equal(t, report, current)
	assert.Equal(t, StateLoaded, state)
}

func TestService_Generate_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao integrador pode acontecer
	generator := mocks.NewMockReportGenerator(ctrl)
	service := NewService(generator)

	_, err := service.Generate(context.Background(), Request{Kind: domain.ReportKind("unknown")})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestService_Generate_FailureKeepsPreviousReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := mocks.NewMockReportGenerator(ctrl)
	service := NewService(generator)

	loaded := &domain.Report{
		Kind:        domain.ReportTopProducts,
		TopProducts: &domain.TopProductsReport{},
	}

	generator.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(loaded, nil)
	generator.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("POS indisponível"))

	_, err := service.Generate(context.Background(), Request{
		Kind:   domain.ReportTopProducts,
		Preset: domain.PresetCustom,
		Period: domain.ReportPeriod{Days: 7},
	})
	assert.NoError(t, err)

	_, err = service.Generate(context.Background(), Request{
		Kind:   domain.ReportTopProducts,
		Preset: domain.PresetCustom,
		Period: domain.ReportPeriod{Days: 30},
	})
	assert.ErrorIs(t, err, ErrGeneration)

	// A falha não derruba o relatório anterior
	current, state := service.Current()
	assert.Equal(t, loaded, current)
	assert.Equal(t, StateFailed, state)
}

func TestService_Generate_DiscardsStaleResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := mocks.NewMockReportGenerator(ctrl)
	service := NewService(generator)

	stale := &domain.Report{
		Kind:        domain.ReportTopProducts,
		TopProducts: &domain.TopProductsReport{Period: "antigo"},
	}
	fresh := &domain.Report{
		Kind:        domain.ReportTopProducts,
		TopProducts: &domain.TopProductsReport{Period: "novo"},
	}

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	generator.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.ReportKind, map[string]string) (*domain.Report, error) {
			close(firstStarted)
			<-release
			return stale, nil
		})
	generator.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fresh, nil)

	request := Request{
		Kind:   domain.ReportTopProducts,
		Preset: domain.PresetCustom,
		Period: domain.ReportPeriod{Days: 7},
	}

	type outcome struct {
		report *domain.Report
		err    error
	}
	first := make(chan outcome, 1)

	go func() {
		report, err := service.Generate(context.Background(), request)
		first <- outcome{report, err}
	}()

	<-firstStarted

	// O segundo despacho completa enquanto o primeiro ainda está em voo
	result, err := service.Generate(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, fresh, result)

	close(release)
	got := <-first

	// A resposta atrasada não sobrescreve: o chamador recebe o corrente
	assert.NoError(t, got.err)
	assert.Equal(t, fresh, got.report)

	current, state := service.Current()
	assert.Equal(t, fresh, current)
	assert.Equal(t, StateLoaded, state)
}

func TestService_ExportCSV_WithoutReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockReportGenerator(ctrl))

	_, err := service.ExportCSV()
	assert.ErrorIs(t, err, ErrNothingToExport)
}
