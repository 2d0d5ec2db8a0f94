package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

func TestFactoryReport_DailySales(t *testing.T) {
	body := []byte(`{
		"date": "2024-03-10",
		"total_orders": 12,
		"total_revenue": 450.5,
		"total_revenue_with_tax": 495.55,
		"average_order_value": 37.54,
		"top_products": [
			{"name": "X", "quantity": 3, "revenue": 90}
		]
	}`)

	report, err := factoryReport(domain.ReportDailySales, body)
	require.NoError(t, err)
	require.NotNil(t, report.DailySales)

	assert.Equal(t, domain.ReportDailySales, report.Kind)
	assert.Equal(t, 12, report.DailySales.TotalOrders)
	assert.Equal(t, 450.5, report.DailySales.TotalRevenue)
	assert.Len(t, report.DailySales.TopProducts, 1)
	assert.Equal(t, "X", report.DailySales.TopProducts[0].Name)
}

func TestFactoryReport_RejectsMissingRequiredKey(t *testing.T) {
	tests := []struct {
		name string
		kind domain.ReportKind
		body string
	}{
		{
			name: "daily-sales sem total_orders",
			kind: domain.ReportDailySales,
			body: `{"total_revenue": 100}`,
		},
		{
			name: "top-products sem products",
			kind: domain.ReportTopProducts,
			body: `{"period": "7 dias"}`,
		},
		{
			name: "waiter-commission sem waiters",
			kind: domain.ReportWaiterCommission,
			body: `{"total_orders": 3}`,
		},
		{
			name: "payment-methods sem methods nem items",
			kind: domain.ReportPaymentMethods,
			body: `{"period": "7 dias"}`,
		},
		{
			name: "hourly-sales sem hours nem items",
			kind: domain.ReportHourlySales,
			body: `{"date": "2024-03-10"}`,
		},
		{
			name: "payload que não é objeto",
			kind: domain.ReportDailySales,
			body: `[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := factoryReport(tt.kind, []byte(tt.body))
			assert.ErrorIs(t, err, ErrUnexpectedShape)
		})
	}
}

func TestFactoryReport_PaymentMethodsFallbacks(t *testing.T) {
	// Forma alternativa: lista em items, rótulo em name
	body := []byte(`{
		"period": "7 dias",
		"items": [
			{"name": "pix", "count": 4, "revenue": 150},
			{"method": "cash", "count": 2, "revenue": 60}
		]
	}`)

	report, err := factoryReport(domain.ReportPaymentMethods, body)
	require.NoError(t, err)
	require.NotNil(t, report.PaymentMethods)

	methods := report.PaymentMethods.Methods
	require.Len(t, methods, 2)
	assert.Equal(t, "pix", methods[0].Method)
	assert.Equal(t, "cash", methods[1].Method)
}

func TestFactoryReport_TablePerformanceItemsFallback(t *testing.T) {
	body := []byte(`{
		"items": [
			{"name": "Mesa 1", "orders_count": 3, "revenue": 90, "average_order_value": 30}
		]
	}`)

	report, err := factoryReport(domain.ReportTablePerformance, body)
	require.NoError(t, err)
	require.NotNil(t, report.TablePerformance)
	require.Len(t, report.TablePerformance.Tables, 1)
	assert.Equal(t, "Mesa 1", report.TablePerformance.Tables[0].Name)
}

func TestFactoryReport_HourlySalesFallbacks(t *testing.T) {
	// label no lugar de hour, orders_count no lugar de orders
	body := []byte(`{
		"date": "2024-03-10",
		"items": [
			{"label": "12:00", "orders_count": 6, "revenue": 210.75}
		]
	}`)

	report, err := factoryReport(domain.ReportHourlySales, body)
	require.NoError(t, err)
	require.NotNil(t, report.HourlySales)

	hours := report.HourlySales.Hours
	require.Len(t, hours, 1)
	assert.Equal(t, "12:00", hours[0].Hour)
	assert.Equal(t, 6, hours[0].Orders)
	assert.Equal(t, 210.75, hours[0].Revenue)
}

func TestFactoryReport_EmptyListsAreValid(t *testing.T) {
	// Campo presente e vazio é diferente de campo ausente
	report, err := factoryReport(domain.ReportTopProducts, []byte(`{"products": []}`))
	require.NoError(t, err)
	require.NotNil(t, report.TopProducts)
	assert.Empty(t, report.TopProducts.Products)
}
