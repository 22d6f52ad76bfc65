package httpserver

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-petr/merchant-payouts/pkg/configpkg"
)

// seedBalance builds the opening payout balance from the configured limits
// and opening figures.
func seedBalance(config configpkg.Config) (domain.WithdrawalBalance, error) {
	var balance domain.WithdrawalBalance

	fields := []struct {
		dst *decimal.Decimal
		val string
	}{
		{&balance.AvailableAmount, config.OpeningAvailableAmount},
		{&balance.FrozenAmount, config.OpeningFrozenAmount},
		{&balance.ProcessingAmount, config.OpeningProcessingAmount},
		{&balance.TotalWithdrawn, config.OpeningTotalWithdrawn},
		{&balance.MinimumWithdrawal, config.MinimumWithdrawal},
		{&balance.WithdrawalFeeRate, config.WithdrawalFeeRate},
	}

	for _, f := range fields {
		v, err := decimal.NewFromString(f.val)
		if err != nil {
			return balance, err
		}

		*f.dst = v
	}

	return balance, nil
}

// seedBankAccounts returns the demo payout destinations; the first one is
// the default. Account and routing numbers are stored masked.
func seedBankAccounts() []domain.CreateBankAccountParams {
	return []domain.CreateBankAccountParams{
		{
			BankName:      "Chase Bank",
			AccountType:   domain.AccountTypeChecking,
			AccountNumber: "****4567",
			RoutingNumber: "****1234",
			MakeDefault:   true,
		},
		{
			BankName:      "Bank of America",
			AccountType:   domain.AccountTypeSavings,
			AccountNumber: "****8901",
			RoutingNumber: "****5678",
		},
	}
}

// seedWithdrawals returns the demo withdrawal history, newest first. The
// opening balance figures already account for these records.
func seedWithdrawals(chaseID, bofaID string) []domain.WithdrawalRequest {
	ts := func(year int, month time.Month, day, hour int) *time.Time {
		t := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
		return &t
	}

	return []domain.WithdrawalRequest{
		{
			ID:              "WD-20241226-001",
			Amount:          decimal.NewFromInt(500),
			Fee:             decimal.Zero,
			ActualAmount:    decimal.NewFromInt(500),
			BankAccountID:   chaseID,
			BankAccountInfo: "Chase Bank ****4567",
			Status:          domain.WithdrawalProcessing,
			CreatedAt:       time.Date(2024, 12, 26, 9, 0, 0, 0, time.UTC),
			ProcessedAt:     ts(2024, 12, 26, 10),
		},
		{
			ID:              "WD-20241220-001",
			Amount:          decimal.NewFromInt(2000),
			Fee:             decimal.Zero,
			ActualAmount:    decimal.NewFromInt(2000),
			BankAccountID:   chaseID,
			BankAccountInfo: "Chase Bank ****4567",
			Status:          domain.WithdrawalCompleted,
			CreatedAt:       time.Date(2024, 12, 20, 14, 0, 0, 0, time.UTC),
			ProcessedAt:     ts(2024, 12, 20, 15),
			CompletedAt:     ts(2024, 12, 21, 10),
		},
		{
			ID:              "WD-20241215-001",
			Amount:          decimal.NewFromInt(1500),
			Fee:             decimal.Zero,
			ActualAmount:    decimal.NewFromInt(1500),
			BankAccountID:   chaseID,
			BankAccountInfo: "Chase Bank ****4567",
			Status:          domain.WithdrawalCompleted,
			CreatedAt:       time.Date(2024, 12, 15, 11, 0, 0, 0, time.UTC),
			ProcessedAt:     ts(2024, 12, 15, 12),
			CompletedAt:     ts(2024, 12, 16, 9),
		},
		{
			ID:              "WD-20241210-001",
			Amount:          decimal.NewFromInt(800),
			Fee:             decimal.Zero,
			ActualAmount:    decimal.NewFromInt(800),
			BankAccountID:   bofaID,
			BankAccountInfo: "Bank of America ****8901",
			Status:          domain.WithdrawalFailed,
			FailReason:      "Bank account verification failed",
			CreatedAt:       time.Date(2024, 12, 10, 16, 0, 0, 0, time.UTC),
			ProcessedAt:     ts(2024, 12, 10, 17),
		},
		{
			ID:              "WD-20241205-001",
			Amount:          decimal.NewFromInt(1200),
			Fee:             decimal.Zero,
			ActualAmount:    decimal.NewFromInt(1200),
			BankAccountID:   chaseID,
			BankAccountInfo: "Chase Bank ****4567",
			Status:          domain.WithdrawalCompleted,
			CreatedAt:       time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC),
			ProcessedAt:     ts(2024, 12, 5, 11),
			CompletedAt:     ts(2024, 12, 6, 8),
		},
	}
}

// seedFinanceStats returns the demo revenue aggregates per period.
func seedFinanceStats() map[domain.StatsPeriod]domain.FinanceStats {
	return map[domain.StatsPeriod]domain.FinanceStats{
		domain.StatsPeriodToday: {
			OrderCount:       12,
			TotalAmount:      decimal.NewFromFloat(458.90),
			DeliveryFee:      decimal.NewFromFloat(35.94),
			PlatformFee:      decimal.NewFromFloat(22.95),
			SettlementAmount: decimal.NewFromFloat(400.01),
			SettledAmount:    decimal.Zero,
			PendingAmount:    decimal.NewFromFloat(400.01),
		},
		domain.StatsPeriodWeek: {
			OrderCount:       87,
			TotalAmount:      decimal.NewFromFloat(3245.67),
			DeliveryFee:      decimal.NewFromFloat(245.78),
			PlatformFee:      decimal.NewFromFloat(162.28),
			SettlementAmount: decimal.NewFromFloat(2837.61),
			SettledAmount:    decimal.NewFromFloat(2456.78),
			PendingAmount:    decimal.NewFromFloat(380.83),
		},
		domain.StatsPeriodMonth: {
			OrderCount:       342,
			TotalAmount:      decimal.NewFromFloat(12567.89),
			DeliveryFee:      decimal.NewFromFloat(956.34),
			PlatformFee:      decimal.NewFromFloat(628.39),
			SettlementAmount: decimal.NewFromFloat(10983.16),
			SettledAmount:    decimal.NewFromFloat(8382.45),
			PendingAmount:    decimal.NewFromFloat(2600.71),
		},
	}
}

// seedPayments returns the demo settlement payment history, newest first.
func seedPayments() []domain.PaymentRecord {
	return []domain.PaymentRecord{
		{ID: "PAY-001", Date: "2024-12-20", Amount: decimal.NewFromFloat(2456.78), Status: "completed", Method: "ach", BankAccount: "****4567"},
		{ID: "PAY-002", Date: "2024-12-13", Amount: decimal.NewFromFloat(1823.45), Status: "completed", Method: "ach", BankAccount: "****4567"},
		{ID: "PAY-003", Date: "2024-12-06", Amount: decimal.NewFromFloat(2134.90), Status: "completed", Method: "ach", BankAccount: "****4567"},
		{ID: "PAY-004", Date: "2024-11-29", Amount: decimal.NewFromFloat(1967.32), Status: "completed", Method: "ach", BankAccount: "****4567"},
	}
}

// seedDailyStats returns the demo per-day revenue trend, oldest first.
func seedDailyStats() []domain.DailyStat {
	return []domain.DailyStat{
		{Date: "12/20", Orders: 45, Amount: decimal.NewFromFloat(1678.90)},
		{Date: "12/21", Orders: 52, Amount: decimal.NewFromFloat(1923.45)},
		{Date: "12/22", Orders: 38, Amount: decimal.NewFromFloat(1456.78)},
		{Date: "12/23", Orders: 61, Amount: decimal.NewFromFloat(2234.56)},
		{Date: "12/24", Orders: 73, Amount: decimal.NewFromFloat(2789.12)},
		{Date: "12/25", Orders: 28, Amount: decimal.NewFromFloat(1045.67)},
		{Date: "12/26", Orders: 12, Amount: decimal.NewFromFloat(458.90)},
	}
}

func seedRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:           "rest_001",
		Name:         "Golden Dragon Chinese Restaurant",
		Address:      "1234 Main Street, San Francisco, CA 94102",
		Phone:        "(415) 555-0123",
		DeliveryMode: "hybrid",
		Status:       "active",
		JoinDate:     "2024-06-15",
		DeliverySettings: domain.DeliverySettings{
			SelfDeliveryRadius: 3,
			CourierMaxRadius:   domain.CourierMaxRadiusMiles,
			Coordinates:        domain.Coordinates{Lat: 37.7749, Lng: -122.4194},
		},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:            "ORD-20241226-001",
			CustomerPhone: "(415) 555-1234",
			OrderType:     "delivery",
			Items: []domain.OrderItem{
				{ID: "1", Name: "Kung Pao Chicken", Quantity: 2, Price: decimal.NewFromFloat(15.99)},
				{ID: "2", Name: "Fried Rice", Quantity: 1, Price: decimal.NewFromFloat(12.99)},
				{ID: "3", Name: "Spring Rolls", Quantity: 2, Price: decimal.NewFromFloat(6.99)},
			},
			Subtotal:        decimal.NewFromFloat(58.95),
			DeliveryFee:     decimal.NewFromFloat(5.99),
			Tax:             decimal.NewFromFloat(5.31),
			Tips:            decimal.NewFromFloat(8.00),
			Total:           decimal.NewFromFloat(78.25),
			PaymentMethod:   "card",
			PaymentStatus:   "paid",
			DeliveryAddress: "567 Oak Avenue, Apt 2B, San Francisco, CA 94103",
			Status:          domain.OrderPending,
			CreatedAt:       time.Date(2024, 12, 26, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-20241226-002",
			CustomerPhone: "(415) 555-5678",
			OrderType:     "pickup",
			Items: []domain.OrderItem{
				{ID: "4", Name: "General Tso Chicken", Quantity: 1, Price: decimal.NewFromFloat(14.99)},
				{ID: "5", Name: "Hot and Sour Soup", Quantity: 2, Price: decimal.NewFromFloat(5.99)},
			},
			Subtotal:      decimal.NewFromFloat(26.97),
			DeliveryFee:   decimal.Zero,
			Tax:           decimal.NewFromFloat(2.43),
			Tips:          decimal.Zero,
			Total:         decimal.NewFromFloat(29.40),
			PaymentMethod: "cash",
			PaymentStatus: "pending",
			Status:        domain.OrderPending,
			CreatedAt:     time.Date(2024, 12, 26, 11, 15, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-20241225-003",
			CustomerPhone: "(415) 555-9012",
			OrderType:     "delivery",
			Items: []domain.OrderItem{
				{ID: "6", Name: "Sweet and Sour Pork", Quantity: 1, Price: decimal.NewFromFloat(16.99)},
				{ID: "7", Name: "Chow Mein", Quantity: 1, Price: decimal.NewFromFloat(13.99)},
				{ID: "8", Name: "Egg Drop Soup", Quantity: 1, Price: decimal.NewFromFloat(4.99)},
			},
			Subtotal:        decimal.NewFromFloat(35.97),
			DeliveryFee:     decimal.NewFromFloat(4.99),
			Tax:             decimal.NewFromFloat(3.24),
			Tips:            decimal.NewFromFloat(6.00),
			Total:           decimal.NewFromFloat(50.20),
			PaymentMethod:   "card",
			PaymentStatus:   "paid",
			DeliveryAddress: "789 Pine Street, San Francisco, CA 94108",
			Status:          domain.OrderCompleted,
			CreatedAt:       time.Date(2024, 12, 25, 18, 45, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-20241225-004",
			CustomerPhone: "(415) 555-3456",
			OrderType:     "pickup",
			Items: []domain.OrderItem{
				{ID: "9", Name: "Beef with Broccoli", Quantity: 2, Price: decimal.NewFromFloat(15.99)},
			},
			Subtotal:      decimal.NewFromFloat(31.98),
			DeliveryFee:   decimal.Zero,
			Tax:           decimal.NewFromFloat(2.88),
			Tips:          decimal.NewFromFloat(5.00),
			Total:         decimal.NewFromFloat(39.86),
			PaymentMethod: "card",
			PaymentStatus: "paid",
			Status:        domain.OrderCompleted,
			CreatedAt:     time.Date(2024, 12, 25, 12, 30, 0, 0, time.UTC),
		},
	}
}
