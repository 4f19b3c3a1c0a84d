package app

import (
	"net/http"

	"gorm.io/gorm"

	"fintrack-go/internal/config"
	"fintrack-go/internal/db"
	budgetdomain "fintrack-go/internal/domain/budget"
	categorydomain "fintrack-go/internal/domain/category"
	dashboarddomain "fintrack-go/internal/domain/dashboard"
	debtdomain "fintrack-go/internal/domain/debt"
	goaldomain "fintrack-go/internal/domain/goal"
	transactiondomain "fintrack-go/internal/domain/transaction"
	userdomain "fintrack-go/internal/domain/user"
	walletdomain "fintrack-go/internal/domain/wallet"
	budgetrepo "fintrack-go/internal/repository/postgres/budget"
	categoryrepo "fintrack-go/internal/repository/postgres/category"
	dashboardrepo "fintrack-go/internal/repository/postgres/dashboard"
	debtrepo "fintrack-go/internal/repository/postgres/debt"
	goalrepo "fintrack-go/internal/repository/postgres/goal"
	transactionrepo "fintrack-go/internal/repository/postgres/transaction"
	userrepo "fintrack-go/internal/repository/postgres/user"
	walletrepo "fintrack-go/internal/repository/postgres/wallet"
	"fintrack-go/internal/transport/httpserver"
	"fintrack-go/internal/transport/httpserver/handler"
	"fintrack-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: connecting to database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	wallets := walletdomain.NewService(walletrepo.NewPostgres(dbConn))
	categories := categorydomain.NewService(categoryrepo.NewPostgres(dbConn))
	budgets := budgetdomain.NewService(budgetrepo.NewPostgres(dbConn))
	transactions := transactiondomain.NewService(transactionrepo.NewPostgres(dbConn))
	debts := debtdomain.NewService(debtrepo.NewPostgres(dbConn))
	goals := goaldomain.NewService(goalrepo.NewPostgres(dbConn))
	dashboard := dashboarddomain.NewService(dashboardrepo.NewPostgres(dbConn))

	handlers := handler.New(cfg, log, users, wallets, categories, budgets, transactions, debts, goals, dashboard)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, log)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
