package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

// Export é o artefato de download gerado a partir do relatório corrente.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

const csvContentType = "text/csv; charset=utf-8"

// ExportReportCSV serializa o relatório no layout de colunas fixo do seu
// tipo. O formato é CSV mínimo: cada campo vira texto, aspas duplas embutidas
// são dobradas e os campos são unidos por vírgula, sem aspas envolventes.
func ExportReportCSV(report *domain.Report, now time.Time) *Export {
	var rows []string

	push := func(fields ...string) {
		escaped := make([]string, len(fields))
		for i, field := range fields {
			escaped[i] = strings.ReplaceAll(field, `"`, `""`)
		}
		rows = append(rows, strings.Join(escaped, ","))
	}

	switch {
	case report.DailySales != nil:
		data := report.DailySales
		push("Métrica", "Valor")
		push("Total de Pedidos", itoa(data.TotalOrders))
		push("Receita Total", ftoa(data.TotalRevenue))
		push("Receita com Taxa", ftoa(data.TotalRevenueWithTax))
		push("Ticket Médio", ftoa(data.AverageOrderValue))
		if data.TopProducts != nil {
			rows = append(rows, "")
			push("Produtos Mais Vendidos")
			push("Produto", "Quantidade", "Receita")
			for _, product := range data.TopProducts {
				push(product.Name, itoa(product.Quantity), ftoa(product.Revenue))
			}
		}

	case report.TopProducts != nil:
		push("Produto", "Quantidade", "Receita")
		for _, product := range report.TopProducts.Products {
			push(product.Name, itoa(product.QuantitySold), ftoa(product.Revenue))
		}

	case report.WaiterCommission != nil:
		push("Garçom", "Pedidos", "Receita", "Comissão")
		for _, waiter := range report.WaiterCommission.Waiters {
			push(waiter.Username, itoa(waiter.OrdersCount), ftoa(waiter.Revenue), ftoa(waiter.Commission))
		}

	case report.PaymentMethods != nil:
		push("Método", "Pedidos", "Receita")
		for _, method := range report.PaymentMethods.Methods {
			push(method.Method, itoa(method.Count), ftoa(method.Revenue))
		}

	case report.TablePerformance != nil:
		push("Mesa", "Pedidos", "Receita", "Ticket Médio")
		for _, table := range report.TablePerformance.Tables {
			push(table.Name, itoa(table.OrdersCount), ftoa(table.Revenue), ftoa(table.AverageOrderValue))
		}

	case report.HourlySales != nil:
		push("Hora", "Pedidos", "Receita")
		for _, slot := range report.HourlySales.Hours {
			push(slot.Hour, itoa(slot.Orders), ftoa(slot.Revenue))
		}

		// Relatório sem payload reconhecível: CSV vazio, nunca erro.
	}

	return &Export{
		Filename:    fmt.Sprintf("%s-%s.csv", report.Kind, now.Format(time.DateOnly)),
		ContentType: csvContentType,
		Content:     []byte(strings.Join(rows, "\n")),
	}
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

// ftoa formata sem zeros à direita (90.0 vira "90").
func ftoa(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
