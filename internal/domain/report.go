package domain

// ReportKind identifica um dos seis relatórios agregados do núcleo do POS.
type ReportKind string

const (
	ReportDailySales       ReportKind = "daily-sales"
	ReportTopProducts      ReportKind = "top-products"
	ReportWaiterCommission ReportKind = "waiter-commission"
	ReportPaymentMethods   ReportKind = "payment-methods"
	ReportTablePerformance ReportKind = "table-performance"
	ReportHourlySales      ReportKind = "hourly-sales"
)

// ReportKinds lista os tipos na ordem em que o painel os apresenta.
var ReportKinds = []ReportKind{
	ReportDailySales,
	ReportTopProducts,
	ReportWaiterCommission,
	ReportPaymentMethods,
	ReportTablePerformance,
	ReportHourlySales,
}

func ParseReportKind(s string) (ReportKind, bool) {
	kind := ReportKind(s)
	return kind, kind.Valid()
}

func (k ReportKind) Valid() bool {
	switch k {
	case ReportDailySales, ReportTopProducts, ReportWaiterCommission,
		ReportPaymentMethods, ReportTablePerformance, ReportHourlySales:
		return true
	}
	return false
}

// UsesSingleDate indica os relatórios cujo período é um único dia e cuja rota
// no núcleo do POS embute a data no caminho.
func (k ReportKind) UsesSingleDate() bool {
	return k == ReportDailySales || k == ReportHourlySales
}

// UsesDateRange indica os relatórios parametrizados por intervalo inclusivo.
func (k ReportKind) UsesDateRange() bool {
	return k == ReportWaiterCommission
}

// ReportFilters são restrições opcionais aplicadas à consulta. Slices vazios
// significam "sem restrição" e a ordem de inserção é preservada na
// serialização dos parâmetros.
type ReportFilters struct {
	CategoryIDs    []int
	ProductIDs     []int
	Waiters        []string
	PaymentMethods []string
}

func (f ReportFilters) Empty() bool {
	return len(f.CategoryIDs) == 0 && len(f.ProductIDs) == 0 &&
		len(f.Waiters) == 0 && len(f.PaymentMethods) == 0
}

// DailySalesReport é o resumo de vendas de um único dia.
type DailySalesReport struct {
	Date                string         `json:"date,omitempty"`
	TotalOrders         int            `json:"total_orders"`
	TotalRevenue        float64        `json:"total_revenue"`
	TotalRevenueWithTax float64        `json:"total_revenue_with_tax"`
	AverageOrderValue   float64        `json:"average_order_value"`
	TopProducts         []ProductSales `json:"top_products"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type TopProductsReport struct {
	Period                   string           `json:"period"`
	TotalQuantitySold        int              `json:"total_quantity_sold"`
	TotalRevenueFromProducts float64          `json:"total_revenue_from_products"`
	Products                 []TopProductItem `json:"products"`
}

type TopProductItem struct {
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type WaiterCommissionReport struct {
	Period       string             `json:"period"`
	TotalOrders  int                `json:"total_orders"`
	TotalRevenue float64            `json:"total_revenue"`
	Waiters      []WaiterCommission `json:"waiters"`
}

type WaiterCommission struct {
	Username    string  `json:"username"`
	OrdersCount int     `json:"orders_count"`
	Revenue     float64 `json:"revenue"`
	Commission  float64 `json:"commission"`
}

type PaymentMethodsReport struct {
	Period  string                 `json:"period,omitempty"`
	Methods []PaymentMethodSummary `json:"methods"`
}

type PaymentMethodSummary struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type TablePerformanceReport struct {
	Period string         `json:"period,omitempty"`
	Tables []TableSummary `json:"tables"`
}

type TableSummary struct {
	Name              string  `json:"name"`
	OrdersCount       int     `json:"orders_count"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type HourlySalesReport struct {
	Date  string       `json:"date,omitempty"`
	Hours []HourlySlot `json:"hours"`
}

type HourlySlot struct {
	Hour    string  `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Report é a união etiquetada dos resultados: exatamente o campo
// correspondente a Kind é preenchido.
type Report struct {
	Kind             ReportKind              `json:"kind"`
	DailySales       *DailySalesReport       `json:"daily_sales,omitempty"`
	TopProducts      *TopProductsReport      `json:"top_products,omitempty"`
	WaiterCommission *WaiterCommissionReport `json:"waiter_commission,omitempty"`
	PaymentMethods   *PaymentMethodsReport   `json:"payment_methods,omitempty"`
	TablePerformance *TablePerformanceReport `json:"table_performance,omitempty"`
	HourlySales      *HourlySalesReport      `json:"hourly_sales,omitempty"`
}
