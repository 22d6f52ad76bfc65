package financedelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-petr/merchant-payouts/pkg/errorspkg"
	"github.com/go-petr/merchant-payouts/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var equateDecimals = cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) })

func weekStats() domain.FinanceStats {
	return domain.FinanceStats{
		OrderCount:       87,
		TotalAmount:      decimal.NewFromFloat(3245.67),
		DeliveryFee:      decimal.NewFromFloat(245.78),
		PlatformFee:      decimal.NewFromFloat(162.28),
		SettlementAmount: decimal.NewFromFloat(2837.61),
		SettledAmount:    decimal.NewFromFloat(2456.78),
		PendingAmount:    decimal.NewFromFloat(380.83),
	}
}

func TestStats(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:  "OK",
			query: "?period=week",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Eq(domain.StatsPeriodWeek)).
					Times(1).
					Return(weekStats(), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "MissingPeriod",
			query: "",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Period is required",
		},
		{
			name:  "UnsupportedPeriod",
			query: "?period=year",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Period is invalid",
		},
		{
			name:  "UnknownPeriodInRepo",
			query: "?period=month",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Eq(domain.StatsPeriodMonth)).
					Times(1).
					Return(domain.FinanceStats{}, domain.ErrUnknownStatsPeriod)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrUnknownStatsPeriod.Error(),
		},
		{
			name:  "Internal",
			query: "?period=today",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Eq(domain.StatsPeriodToday)).
					Times(1).
					Return(domain.FinanceStats{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)
			tc.buildStubs(service)

			server := gin.New()
			server.GET("/finance/stats", handler.Stats)

			req, err := http.NewRequest(http.MethodGet, "/finance/stats"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Stats domain.FinanceStats `json:"stats"`
				}{},
			}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			got, ok := res.Data.(*struct {
				Stats domain.FinanceStats `json:"stats"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			if diff := cmp.Diff(weekStats(), got.Stats, equateDecimals); diff != "" {
				t.Errorf("stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := []domain.PaymentRecord{
		{
			ID:          "PAY-001",
			Date:        "2024-12-20",
			Amount:      decimal.NewFromFloat(2456.78),
			Status:      "completed",
			Method:      "ach",
			BankAccount: "****4567",
		},
		{
			ID:          "PAY-002",
			Date:        "2024-12-13",
			Amount:      decimal.NewFromFloat(1823.45),
			Status:      "completed",
			Method:      "ach",
			BankAccount: "****4567",
		},
	}

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	service.EXPECT().
		Payments(gomock.Any()).
		Times(1).
		Return(payments, nil)

	server := gin.New()
	server.GET("/payments", handler.Payments)

	req, err := http.NewRequest(http.MethodGet, "/payments", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{
		Data: &struct {
			Payments []domain.PaymentRecord `json:"payments"`
		}{},
	}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Errorf("Decoding response body error: %v", err)
	}

	got, ok := res.Data.(*struct {
		Payments []domain.PaymentRecord `json:"payments"`
	})
	if !ok {
		t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
	}

	if diff := cmp.Diff(payments, got.Payments, equateDecimals); diff != "" {
		t.Errorf("payments mismatch (-want +got):\n%s", diff)
	}
}

func TestDailyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	daily := []domain.DailyStat{
		{Date: "12/25", Orders: 28, Amount: decimal.NewFromFloat(1045.67)},
		{Date: "12/26", Orders: 12, Amount: decimal.NewFromFloat(458.90)},
	}

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	service.EXPECT().
		DailyStats(gomock.Any()).
		Times(1).
		Return(daily, nil)

	server := gin.New()
	server.GET("/finance/daily", handler.DailyStats)

	req, err := http.NewRequest(http.MethodGet, "/finance/daily", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{
		Data: &struct {
			Daily []domain.DailyStat `json:"daily"`
		}{},
	}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Errorf("Decoding response body error: %v", err)
	}

	got, ok := res.Data.(*struct {
		Daily []domain.DailyStat `json:"daily"`
	})
	if !ok {
		t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
	}

	if diff := cmp.Diff(daily, got.Daily, equateDecimals); diff != "" {
		t.Errorf("daily stats mismatch (-want +got):\n%s", diff)
	}
}
