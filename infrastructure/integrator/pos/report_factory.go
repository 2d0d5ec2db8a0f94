package pos

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// factoryReport decodifica o payload cru no registro tipado do tipo pedido.
// Os campos alternativos que o núcleo do POS emite conforme a versão (methods|items,
// tables|items, hours|items, hour|label, orders|orders_count, method|name)
// são normalizados aqui, de modo que o restante do sistema só vê uma forma.
func factoryReport(kind domain.ReportKind, body []byte) (*domain.Report, error) {
	report := &domain.Report{Kind: kind}

	// Presença de chaves decide se o payload tem a forma esperada: um campo
	// ausente é diferente de um campo presente e vazio.
	var keys map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
	}

	switch kind {
	case domain.ReportDailySales:
		if _, ok := keys["total_orders"]; !ok {
			return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: falta total_orders", kind)
		}
		var payload domain.DailySalesReport
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
		}
		report.DailySales = &payload

	case domain.ReportTopProducts:
		if _, ok := keys["products"]; !ok {
			return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: falta products", kind)
		}
		var payload domain.TopProductsReport
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
		}
		report.TopProducts = &payload

	case domain.ReportWaiterCommission:
		if _, ok := keys["waiters"]; !ok {
			return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: falta waiters", kind)
		}
		var payload domain.WaiterCommissionReport
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
		}
		report.WaiterCommission = &payload

	case domain.ReportPaymentMethods:
		payload, err := factoryPaymentMethods(kind, body, keys)
		if err != nil {
			return nil, err
		}
		report.PaymentMethods = payload

	case domain.ReportTablePerformance:
		payload, err := factoryTablePerformance(kind, body, keys)
		if err != nil {
			return nil, err
		}
		report.TablePerformance = payload

	case domain.ReportHourlySales:
		payload, err := factoryHourlySales(kind, body, keys)
		if err != nil {
			return nil, err
		}
		report.HourlySales = payload

	default:
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório desconhecido: %s", kind)
	}

	return report, nil
}

type paymentMethodItem struct {
	Method  string  `json:"method"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type paymentMethodsPayload struct {
	Period  string              `json:"period"`
	Methods []paymentMethodItem `json:"methods"`
	Items   []paymentMethodItem `json:"items"`
}

func factoryPaymentMethods(kind domain.ReportKind, body []byte, keys map[string]jsoniter.RawMessage) (*domain.PaymentMethodsReport, error) {
	_, hasMethods := keys["methods"]
	_, hasItems := keys["items"]
	if !hasMethods && !hasItems {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: falta methods/items", kind)
	}

	var payload paymentMethodsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
	}

	items := payload.Methods
	if items == nil {
		items = payload.Items
	}

	methods := make([]domain.PaymentMethodSummary, 0, len(items))
	for _, item := range items {
		method := item.Method
		if method == "" {
			method = item.Name
		}
		methods = append(methods, domain.PaymentMethodSummary{
			Method:  method,
			Count:   item.Count,
			Revenue: item.Revenue,
		})
	}

	return &domain.PaymentMethodsReport{
		Period:  payload.Period,
		Methods: methods,
	}, nil
}

type tablePerformancePayload struct {
	Period string                `json:"period"`
	Tables []domain.TableSummary `json:"tables"`
	Items  []domain.TableSummary `json:"items"`
}

func factoryTablePerformance(kind domain.ReportKind, body []byte, keys map[string]jsoniter.RawMessage) (*domain.TablePerformanceReport, error) {
	_, hasTables := keys["tables"]
	_, hasItems := keys["items"]
	if !hasTables && !hasItems {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: falta tables/items", kind)
	}

	var payload tablePerformancePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
	}

	tables := payload.Tables
	if tables == nil {
		tables = payload.Items
	}

	return &domain.TablePerformanceReport{
		Period: payload.Period,
		Tables: tables,
	}, nil
}

type hourlySlotItem struct {
	Hour        string  `json:"hour"`
	Label       string  `json:"label"`
	Orders      int     `json:"orders"`
	OrdersCount int     `json:"orders_count"`
	Revenue     float64 `json:"revenue"`
}

type hourlySalesPayload struct {
	Date  string           `json:"date"`
	Hours []hourlySlotItem `json:"hours"`
	Items []hourlySlotItem `json:"items"`
}

func factoryHourlySales(kind domain.ReportKind, body []byte, keys map[string]jsoniter.RawMessage) (*domain.HourlySalesReport, error) {
	_, hasHours := keys["hours"]
	_, hasItems := keys["items"]
	if !hasHours && !hasItems {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: falta hours/items", kind)
	}

	var payload hourlySalesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "relatório %s: %v", kind, err)
	}

	items := payload.Hours
	if items == nil {
		items = payload.Items
	}

	hours := make([]domain.HourlySlot, 0, len(items))
	for _, item := range items {
		hour := item.Hour
		if hour == "" {
			hour = item.Label
		}
		orders := item.Orders
		if orders == 0 {
			orders = item.OrdersCount
		}
		hours = append(hours, domain.HourlySlot{
			Hour:    hour,
			Orders:  orders,
			Revenue: item.Revenue,
		})
	}

	return &domain.HourlySalesReport{
		Date:  payload.Date,
		Hours: hours,
	}, nil
}
