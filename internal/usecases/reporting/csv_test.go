package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

var exportDate = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func TestExportReportCSV_DailySalesTwoSections(t *testing.T) {
	report := &domain.Report{
		Kind: domain.ReportDailySales,
		DailySales: &domain.DailySalesReport{
			TotalOrders:         12,
			TotalRevenue:        450.5,
			TotalRevenueWithTax: 495.55,
			AverageOrderValue:   37.54,
			TopProducts: []domain.ProductSales{
				{Name: "X", Quantity: 3, Revenue: 90.0},
			},
		},
	}

	export := ExportReportCSV(report, exportDate)

	expected := strings.Join([]string{
		"Métrica,Valor",
		"Total de Pedidos,12",
		"Receita Total,450.5",
		"Receita com Taxa,495.55",
		"Ticket Médio,37.54",
		"",
		"Produtos Mais Vendidos",
		"Produto,Quantidade,Receita",
		"X,3,90",
	}, "\n")

	assert.Equal(t, expected, string(export.Content))
	assert.Equal(t, "daily-sales-2024-03-10.csv", export.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)
}

func TestExportReportCSV_DailySalesWithoutTopProducts(t *testing.T) {
	report := &domain.Report{
		Kind: domain.ReportDailySales,
		DailySales: &domain.DailySalesReport{
			TotalOrders:  5,
			TotalRevenue: 100,
		},
	}

	export := ExportReportCSV(report, exportDate)

	lines := strings.Split(string(export.Content), "\n")
	assert.Len(t, lines, 5)
	assert.NotContains(t, string(export.Content), "Produtos Mais Vendidos")
}

func TestExportReportCSV_EscapesEmbeddedQuotes(t *testing.T) {
	report := &domain.Report{
		Kind: domain.ReportTopProducts,
		TopProducts: &domain.TopProductsReport{
			Products: []domain.TopProductItem{
				{Name: `Pizza "Especial"`, QuantitySold: 2, Revenue: 80},
			},
		},
	}

	export := ExportReportCSV(report, exportDate)

	// Aspas embutidas são dobradas, sem aspas envolventes no campo.
	assert.Contains(t, string(export.Content), `Pizza ""Especial"",2,80`)
}

func TestExportReportCSV_PerKindLayouts(t *testing.T) {
	tests := []struct {
		name          string
		report        *domain.Report
		expectedLines []string
	}{
		{
			name: "waiter-commission",
			report: &domain.Report{
				Kind: domain.ReportWaiterCommission,
				WaiterCommission: &domain.WaiterCommissionReport{
					Waiters: []domain.WaiterCommission{
						{Username: "maria", OrdersCount: 8, Revenue: 320.5, Commission: 32.05},
					},
				},
			},
			expectedLines: []string{
				"Garçom,Pedidos,Receita,Comissão",
				"maria,8,320.5,32.05",
			},
		},
		{
			name: "payment-methods",
			report: &domain.Report{
				Kind: domain.ReportPaymentMethods,
				PaymentMethods: &domain.PaymentMethodsReport{
					Methods: []domain.PaymentMethodSummary{
						{Method: "pix", Count: 4, Revenue: 150},
					},
				},
			},
			expectedLines: []string{
				"Método,Pedidos,Receita",
				"pix,4,150",
			},
		},
		{
			name: "table-performance",
			report: &domain.Report{
				Kind: domain.ReportTablePerformance,
				TablePerformance: &domain.TablePerformanceReport{
					Tables: []domain.TableSummary{
						{Name: "Mesa 1", OrdersCount: 3, Revenue: 90, AverageOrderValue: 30},
					},
				},
			},
			expectedLines: []string{
				"Mesa,Pedidos,Receita,Ticket Médio",
				"Mesa 1,3,90,30",
			},
		},
		{
			name: "hourly-sales",
			report: &domain.Report{
				Kind: domain.ReportHourlySales,
				HourlySales: &domain.HourlySalesReport{
					Hours: []domain.HourlySlot{
						{Hour: "12:00", Orders: 6, Revenue: 210.75},
					},
				},
			},
			expectedLines: []string{
				"Hora,Pedidos,Receita",
				"12:00,6,210.75",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			export := ExportReportCSV(tt.report, exportDate)
			assert.Equal(t, strings.Join(tt.expectedLines, "\n"), string(export.Content))
		})
	}
}

func TestExportReportCSV_FilenameUsesKindAndDate(t *testing.T) {
	report := &domain.Report{
		Kind:        domain.ReportHourlySales,
		HourlySales: &domain.HourlySalesReport{},
	}

	export := ExportReportCSV(report, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "hourly-sales-2025-01-02.csv", export.Filename)
}
