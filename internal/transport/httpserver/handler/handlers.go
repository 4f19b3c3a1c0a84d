package handler

import (
	budgetdomain "fintrack-go/internal/domain/budget"
	categorydomain "fintrack-go/internal/domain/category"
	dashboarddomain "fintrack-go/internal/domain/dashboard"
	debtdomain "fintrack-go/internal/domain/debt"
	goaldomain "fintrack-go/internal/domain/goal"
	transactiondomain "fintrack-go/internal/domain/transaction"
	userdomain "fintrack-go/internal/domain/user"
	walletdomain "fintrack-go/internal/domain/wallet"
	"fintrack-go/internal/config"
	"fintrack-go/pkg/logger"
)

type Handlers struct {
	Users        *userdomain.Service
	Wallets      *walletdomain.Service
	Categories   *categorydomain.Service
	Budgets      *budgetdomain.Service
	Transactions *transactiondomain.Service
	Debts        *debtdomain.Service
	Goals        *goaldomain.Service
	Dashboard    *dashboarddomain.Service

	cfg config.Config
	log logger.Logger
}

func New(
	cfg config.Config,
	log logger.Logger,
	users *userdomain.Service,
	wallets *walletdomain.Service,
	categories *categorydomain.Service,
	budgets *budgetdomain.Service,
	transactions *transactiondomain.Service,
	debts *debtdomain.Service,
	goals *goaldomain.Service,
	dashboard *dashboarddomain.Service,
) *Handlers {
	return &Handlers{
		Users:        users,
		Wallets:      wallets,
		Categories:   categories,
		Budgets:      budgets,
		Transactions: transactions,
		Debts:        debts,
		Goals:        goals,
		Dashboard:    dashboard,
		cfg:          cfg,
		log:          log,
	}
}
