package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnknownStatsPeriod indicates a revenue stats period outside the supported set.
var ErrUnknownStatsPeriod = errors.New("unknown stats period")

// StatsPeriod selects the aggregation window for revenue stats.
type StatsPeriod string

// Constants for all supported stats periods.
const (
	StatsPeriodToday StatsPeriod = "today"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
)

// FinanceStats holds the revenue figures for one aggregation period.
type FinanceStats struct {
	OrderCount       int32           `json:"order_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee"`
	PlatformFee      decimal.Decimal `json:"platform_fee"`
	SettlementAmount decimal.Decimal `json:"settlement_amount"`
	SettledAmount    decimal.Decimal `json:"settled_amount"`
	PendingAmount    decimal.Decimal `json:"pending_amount"`
}

// PaymentRecord holds one row of the settlement payment history.
type PaymentRecord struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Method      string          `json:"method"`
	BankAccount string          `json:"bank_account"`
}

// DailyStat holds order count and revenue for a single day of the trend chart data.
type DailyStat struct {
	Date   string          `json:"date"`
	Orders int32           `json:"orders"`
	Amount decimal.Decimal `json:"amount"`
}
