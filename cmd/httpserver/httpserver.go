// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/merchant-payouts/internal/bankaccountdelivery"
	"github.com/go-petr/merchant-payouts/internal/bankaccountrepo"
	"github.com/go-petr/merchant-payouts/internal/bankaccountservice"
	"github.com/go-petr/merchant-payouts/internal/domain"
	"github.com/go-petr/merchant-payouts/internal/financedelivery"
	"github.com/go-petr/merchant-payouts/internal/financerepo"
	"github.com/go-petr/merchant-payouts/internal/financeservice"
	"github.com/go-petr/merchant-payouts/internal/middleware"
	"github.com/go-petr/merchant-payouts/internal/orderdelivery"
	"github.com/go-petr/merchant-payouts/internal/orderrepo"
	"github.com/go-petr/merchant-payouts/internal/orderservice"
	"github.com/go-petr/merchant-payouts/internal/restaurantdelivery"
	"github.com/go-petr/merchant-payouts/internal/restaurantrepo"
	"github.com/go-petr/merchant-payouts/internal/restaurantservice"
	"github.com/go-petr/merchant-payouts/internal/sessiondelivery"
	"github.com/go-petr/merchant-payouts/internal/sessionrepo"
	"github.com/go-petr/merchant-payouts/internal/sessionservice"
	"github.com/go-petr/merchant-payouts/internal/userdelivery"
	"github.com/go-petr/merchant-payouts/internal/userrepo"
	"github.com/go-petr/merchant-payouts/internal/userservice"
	"github.com/go-petr/merchant-payouts/internal/withdrawaldelivery"
	"github.com/go-petr/merchant-payouts/internal/withdrawalrepo"
	"github.com/go-petr/merchant-payouts/internal/withdrawalservice"
	"github.com/go-petr/merchant-payouts/pkg/configpkg"
	"github.com/go-petr/merchant-payouts/pkg/tokenpkg"
)

// Server holds the router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	balance, err := seedBalance(config)
	if err != nil {
		return nil, err
	}

	userRepo := userrepo.NewRepoMem()
	sessionRepo := sessionrepo.NewRepoMem()
	bankAccountRepo := bankaccountrepo.NewRepoMem()

	accountParams := seedBankAccounts()
	accounts := make([]domain.BankAccount, 0, len(accountParams))

	for _, arg := range accountParams {
		account, err := bankAccountRepo.Create(context.Background(), arg)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	withdrawalRepo := withdrawalrepo.NewRepoMem(balance, seedWithdrawals(accounts[0].ID, accounts[1].ID)...)
	orderRepo := orderrepo.NewRepoMem(seedOrders())
	restaurantRepo := restaurantrepo.NewRepoMem(seedRestaurant())
	financeRepo := financerepo.NewRepoMem(seedFinanceStats(), seedPayments(), seedDailyStats())

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	bankAccountService := bankaccountservice.New(bankAccountRepo)
	withdrawalService := withdrawalservice.New(withdrawalRepo, bankAccountService)
	orderService := orderservice.New(orderRepo)
	restaurantService := restaurantservice.New(restaurantRepo)
	financeService := financeservice.New(financeRepo)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	bankAccountHandler := bankaccountdelivery.NewHandler(bankAccountService)
	withdrawalHandler := withdrawaldelivery.NewHandler(withdrawalService)
	orderHandler := orderdelivery.NewHandler(orderService)
	restaurantHandler := restaurantdelivery.NewHandler(restaurantService)
	financeHandler := financedelivery.NewHandler(financeService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.POST("/bank-accounts", bankAccountHandler.Create)
	authRoutes.GET("/bank-accounts", bankAccountHandler.List)
	authRoutes.DELETE("/bank-accounts/:id", bankAccountHandler.Delete)
	authRoutes.PATCH("/bank-accounts/:id/default", bankAccountHandler.SetDefault)

	authRoutes.GET("/withdrawals/balance", withdrawalHandler.Balance)
	authRoutes.GET("/withdrawals/prefill", withdrawalHandler.Prefill)
	authRoutes.GET("/withdrawals", withdrawalHandler.List)
	authRoutes.POST("/withdrawals", withdrawalHandler.Create)
	authRoutes.PATCH("/withdrawals/:id/status", withdrawalHandler.UpdateStatus)

	authRoutes.GET("/orders", orderHandler.List)
	authRoutes.GET("/orders/:id", orderHandler.Get)
	authRoutes.PATCH("/orders/:id/cancel", orderHandler.Cancel)

	authRoutes.GET("/restaurant", restaurantHandler.Get)
	authRoutes.PATCH("/restaurant/delivery-radius", restaurantHandler.UpdateDeliveryRadius)

	authRoutes.GET("/finance/stats", financeHandler.Stats)
	authRoutes.GET("/finance/daily", financeHandler.DailyStats)
	authRoutes.GET("/payments", financeHandler.Payments)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("accounttype", bankaccountdelivery.ValidAccountType)
		if err != nil {
			return nil, errors.New("cannot register accounttype validator")
		}
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
