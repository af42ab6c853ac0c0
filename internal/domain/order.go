package domain

import "time"

// OrderRecord representa um pedido pago já carregado pela camada de
// persistência. O núcleo de analytics somente lê esses dados.
type OrderRecord struct {
	ID         string      `json:"id"`
	CreatedAt  time.Time   `json:"createdAt"`
	TotalPrice float64     `json:"totalPrice"`
	IsPaid     bool        `json:"isPaid"`
	LineItems  []*LineItem `json:"lineItems"`
}

// LineItem é um item de pedido com produto e categoria já resolvidos.
type LineItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

// TimeRange são os valores reconhecidos para o seletor de período
type TimeRange string

const (
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
)

// ParseTimeRange normaliza o valor recebido na query string. Valores vazios
// ou desconhecidos caem no período mensal.
func ParseTimeRange(s string) TimeRange {
	switch TimeRange(s) {
	case TimeRangeWeek, TimeRangeMonth, TimeRangeYear:
		return TimeRange(s)
	default:
		return TimeRangeMonth
	}
}

// StartDate converte o seletor de período na data de corte correspondente,
// relativa ao instante informado. Valores desconhecidos caem no mês.
func (t TimeRange) StartDate(now time.Time) time.Time {
	switch t {
	case TimeRangeWeek:
		return now.AddDate(0, 0, -7)
	case TimeRangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}
