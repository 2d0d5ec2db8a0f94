package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

func TestBuildParams_PeriodByKind(t *testing.T) {
	period := domain.ReportPeriod{
		Date:      "2024-03-10",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-10",
		Days:      30,
	}

	tests := []struct {
		name     string
		kind     domain.ReportKind
		expected map[string]string
	}{
		{
			name:     "daily-sales usa apenas date",
			kind:     domain.ReportDailySales,
			expected: map[string]string{"date": "2024-03-10"},
		},
		{
			name:     "hourly-sales usa apenas date",
			kind:     domain.ReportHourlySales,
			expected: map[string]string{"date": "2024-03-10"},
		},
		{
			name: "waiter-commission usa start_date e end_date",
			kind: domain.ReportWaiterCommission,
			expected: map[string]string{
				"start_date": "2024-03-01",
				"end_date":   "2024-03-10",
			},
		},
		{
			name:     "top-products usa days",
			kind:     domain.ReportTopProducts,
			expected: map[string]string{"days": "30"},
		},
		{
			name:     "payment-methods usa days",
			kind:     domain.ReportPaymentMethods,
			expected: map[string]string{"days": "30"},
		},
		{
			name:     "table-performance usa days",
			kind:     domain.ReportTablePerformance,
			expected: map[string]string{"days": "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := BuildParams(tt.kind, period, domain.ReportFilters{})
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestBuildParams_FiltersOnlyWhenPresent(t *testing.T) {
	period := domain.ReportPeriod{Days: 7}

	params := BuildParams(domain.ReportTopProducts, period, domain.ReportFilters{
		CategoryIDs:    []int{3, 1, 2},
		PaymentMethods: []string{"pix", "cash"},
	})

	assert.Equal(t, map[string]string{
		"days":            "7",
		"category_ids":    "3,1,2",
		"payment_methods": "pix,cash",
	}, params)

	// Filtros vazios não geram chave alguma
	_, hasProducts := params["product_ids"]
	_, hasWaiters := params["waiters"]
	assert.False(t, hasProducts)
	assert.False(t, hasWaiters)
}

func TestBuildParams_PreservesInsertionOrder(t *testing.T) {
	params := BuildParams(domain.ReportWaiterCommission, domain.ReportPeriod{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}, domain.ReportFilters{
		Waiters: []string{"maria", "joao", "ana"},
	})

	assert.Equal(t, "maria,joao,ana", params["waiters"])
}

func TestBuildParams_InvalidPeriodIsForwarded(t *testing.T) {
	// start_date > end_date e days não positivo não são validados aqui;
	// a decisão é do núcleo do POS.
	params := BuildParams(domain.ReportWaiterCommission, domain.ReportPeriod{
		StartDate: "2024-12-31",
		EndDate:   "2024-01-01",
	}, domain.ReportFilters{})
	assert.Equal(t, "2024-12-31", params["start_date"])
	assert.Equal(t, "2024-01-01", params["end_date"])

	params = BuildParams(domain.ReportTopProducts, domain.ReportPeriod{Days: -5}, domain.ReportFilters{})
	assert.Equal(t, "-5", params["days"])
}
