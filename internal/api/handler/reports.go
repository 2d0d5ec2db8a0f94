package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-admin-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-admin-api/pkg/log"
)

type ReportResponse struct {
	State  reporting.State `json:"state"`
	Report *domain.Report  `json:"report,omitempty"`
}

// GenerateReport despacha a geração do relatório indicado em :kind com o
// período e os filtros vindos da query string.
func GenerateReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind, ok := domain.ParseReportKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownReport, "Tipo de relatório desconhecido", nil)
			return
		}

		req, err := reportRequest(kind, r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.Generate(r.Context(), req)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_kind": kind,
				"error":       err.Error(),
			}).Error("reports: generation failed")

			// A causa detalhada fica no log; o cliente recebe a falha
			// achatada por categoria.
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar relatório", nil)
			return
		}

		_, state := service.Current()
		writeJSON(w, logger, ReportResponse{State: state, Report: report})
	})
}

// ExportReport serializa o relatório corrente em CSV para download.
func ExportReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		export, err := service.ExportCSV()
		if err != nil {
			if errors.Is(err, reporting.ErrNothingToExport) {
				apiErrors.WriteError(w, apiErrors.ErrReportExport,
					"Nenhum relatório carregado para exportar", nil)
				return
			}

			logger.WithError(err).Error("reports: export failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
		if _, err := w.Write(export.Content); err != nil {
			logger.WithError(err).Warn("reports: failed to write export response")
		}
	})
}

// ReportOptions devolve os dados que alimentam os seletores de filtro do
// painel (categorias, produtos, garçons e métodos de pagamento).
func ReportOptions(service *reporting.OptionsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, service.Load(r.Context()))
	})
}

// reportRequest monta a requisição de geração a partir da query string. Os
// valores de período são repassados como chegam; o núcleo do POS é quem os
// valida.
func reportRequest(kind domain.ReportKind, r *http.Request) (reporting.Request, error) {
	query := r.URL.Query()

	preset := domain.PresetCustom
	if raw := query.Get("preset"); raw != "" {
		parsed, ok := domain.ParsePreset(raw)
		if !ok {
			return reporting.Request{}, fmt.Errorf("preset inválido: %s", raw)
		}
		preset = parsed
	}

	days := 0
	if raw := query.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return reporting.Request{}, fmt.Errorf("days inválido: %s", raw)
		}
		days = parsed
	}

	categoryIDs, err := splitInts(query.Get("category_ids"))
	if err != nil {
		return reporting.Request{}, fmt.Errorf("category_ids inválido: %s", query.Get("category_ids"))
	}

	productIDs, err := splitInts(query.Get("product_ids"))
	if err != nil {
		return reporting.Request{}, fmt.Errorf("product_ids inválido: %s", query.Get("product_ids"))
	}

	return reporting.Request{
		Kind:   kind,
		Preset: preset,
		Period: domain.ReportPeriod{
			Date:      query.Get("date"),
			StartDate: query.Get("start_date"),
			EndDate:   query.Get("end_date"),
			Days:      days,
		},
		Filters: domain.ReportFilters{
			CategoryIDs:    categoryIDs,
			ProductIDs:     productIDs,
			Waiters:        splitList(query.Get("waiters")),
			PaymentMethods: splitList(query.Get("payment_methods")),
		},
	}, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func splitInts(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
