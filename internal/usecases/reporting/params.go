package reporting

import (
	"strconv"
	"strings"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

// BuildParams monta o conjunto exato de parâmetros de consulta para um
// relatório: o parâmetro de período é função pura do tipo, e cada filtro só
// aparece quando não está vazio, serializado como lista separada por vírgula
// na ordem de inserção. Combinações inválidas (start_date > end_date, days
// não positivo) são repassadas sem validação: o comportamento é do backend.
func BuildParams(kind domain.ReportKind, period domain.ReportPeriod, filters domain.ReportFilters) map[string]string {
	params := make(map[string]string)

	switch {
	case kind.UsesSingleDate():
		params["date"] = period.Date
	case kind.UsesDateRange():
		params["start_date"] = period.StartDate
		params["end_date"] = period.EndDate
	default:
		params["days"] = strconv.Itoa(period.Days)
	}

	if len(filters.CategoryIDs) > 0 {
		params["category_ids"] = joinInts(filters.CategoryIDs)
	}
	if len(filters.ProductIDs) > 0 {
		params["product_ids"] = joinInts(filters.ProductIDs)
	}
	if len(filters.Waiters) > 0 {
		params["waiters"] = strings.Join(filters.Waiters, ",")
	}
	if len(filters.PaymentMethods) > 0 {
		params["payment_methods"] = strings.Join(filters.PaymentMethods, ",")
	}

	return params
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, ",")
}
