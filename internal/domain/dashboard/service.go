package dashboard

import (
	"context"
	"time"
)

const (
	trendMonths      = 6
	upcomingLimit    = 5
	monthLayout      = "2006-01"
	statusActiveIdx  = 0
	statusExpiredIdx = 1
	statusFutureIdx  = 2
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Build assembles the consolidated snapshot for one user. It is read-only and
// tolerant of every sub-aggregate being empty; any query failure aborts the
// whole build.
func (s *Service) Build(ctx context.Context, userID uint) (Snapshot, error) {
	today := truncateToDay(s.now().UTC())

	snapshot := Snapshot{
		SpendingTrends:   []MonthlyFlow{},
		UpcomingPayments: []UpcomingPayment{},
	}

	walletSnap, err := s.repo.WalletSnapshot(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	if walletSnap != nil {
		snapshot.Wallet = *walletSnap
	}

	from := startOfMonth(today).AddDate(0, -(trendMonths - 1), 0)
	to := startOfMonth(today).AddDate(0, 1, 0)
	flows, err := s.repo.MonthlyFlows(ctx, userID, from, to)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.SpendingTrends = zeroFillMonths(flows, from, trendMonths)

	budgets, err := s.repo.BudgetsWithSpend(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.Budget = reduceBudgets(budgets, today)

	goals, err := s.repo.ActiveGoalTotals(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.Savings = SavingsOverview{
		TotalTarget:     goals.TotalTarget,
		TotalSaved:      goals.TotalSaved,
		ProgressPercent: percent(goals.TotalSaved, goals.TotalTarget),
	}

	upcoming, err := s.repo.UpcomingDebts(ctx, userID, today, upcomingLimit)
	if err != nil {
		return Snapshot{}, err
	}
	if upcoming != nil {
		snapshot.UpcomingPayments = upcoming
	}

	return snapshot, nil
}

// zeroFillMonths expands the sparse month rows into a dense, chronologically
// ascending series so chart consumers see every month of the window.
func zeroFillMonths(flows []MonthlyFlow, from time.Time, months int) []MonthlyFlow {
	byMonth := make(map[string]MonthlyFlow, len(flows))
	for _, flow := range flows {
		byMonth[flow.Month] = flow
	}

	series := make([]MonthlyFlow, 0, months)
	for i := 0; i < months; i++ {
		month := from.AddDate(0, i, 0).Format(monthLayout)
		if flow, ok := byMonth[month]; ok {
			series = append(series, flow)
			continue
		}
		series = append(series, MonthlyFlow{Month: month})
	}

	return series
}

// reduceBudgets classifies each budget by its window against today, then
// folds active ones into the overview totals.
func reduceBudgets(budgets []BudgetSpend, today time.Time) BudgetOverview {
	var overview BudgetOverview
	var counts [3]int

	for _, b := range budgets {
		switch classify(b, today) {
		case statusExpiredIdx:
			counts[statusExpiredIdx]++
		case statusFutureIdx:
			counts[statusFutureIdx]++
		default:
			counts[statusActiveIdx]++
			overview.TotalBudget += b.Amount
			overview.TotalSpent += b.SpentAmount
			overview.TotalRemaining += b.Amount - b.SpentAmount
		}
	}

	overview.ActiveCount = counts[statusActiveIdx]
	overview.ExpiredCount = counts[statusExpiredIdx]
	overview.FutureCount = counts[statusFutureIdx]
	overview.ProgressPercent = percent(overview.TotalSpent, overview.TotalBudget)
	return overview
}

func classify(b BudgetSpend, today time.Time) int {
	switch {
	case truncateToDay(b.EndDate).Before(today):
		return statusExpiredIdx
	case truncateToDay(b.StartDate).After(today):
		return statusFutureIdx
	default:
		return statusActiveIdx
	}
}

// percent stays within [0, 100]: the zero denominator yields 0, and
// overspending caps at 100.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	value := part / whole * 100
	if value > 100 {
		return 100
	}
	return value
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
