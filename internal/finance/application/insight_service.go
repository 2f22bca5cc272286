package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finsight/internal/finance/domain"
	"finsight/internal/log"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Generator produces a structured answer from a prompt pair by calling an
// external text-generation service. The answer is decoded into out, which
// must be a pointer to a JSON-taggable struct.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, out any) error
}

// Insights are always computed over a fixed trailing window ending now.
const insightWindowDays = 30

const insightSystemPrompt = "You are a personal finance assistant. " +
	"You analyze a user's recent transactions and answer with strict JSON only, no prose outside the JSON object."

const fallbackSummary = "You haven't recorded any transactions yet. " +
	"Start tracking your expenses and income to get personalized insights."

var fallbackTips = []string{
	"Add your first expense to start building your spending history.",
	"Record your income sources so your net balance stays accurate.",
}

type InsightService struct {
	repo      domain.TransactionRepository
	generator Generator
	currency  string
	now       func() time.Time
	logger    *log.Logger
}

func NewInsightService(repo domain.TransactionRepository, generator Generator, currency string, logger *log.Logger) *InsightService {
	return &InsightService{
		repo:      repo,
		generator: generator,
		currency:  currency,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *InsightService) SetClock(now func() time.Time) {
	s.now = now
}

// GetInsights builds the financial insight for the trailing 30 days. The two
// reads are independent and run concurrently. When there is no data at all
// the fixed fallback is returned and the text-generation service is never
// called; any failure of that service once data exists is a hard error.
func (s *InsightService) GetInsights(ctx context.Context, userID string) (*domain.Insight, error) {
	end := s.now().UTC()
	start := end.AddDate(0, 0, -insightWindowDays)
	window := domain.DateWindow{Start: &start, End: &end}

	var expenses, income []domain.Transaction
	var group errgroup.Group
	group.Go(func() error {
		var err error
		expenses, err = s.repo.Find(domain.TransactionQuery{UserID: userID, Type: domain.TypeExpense, Window: window})
		return err
	})
	group.Go(func() error {
		var err error
		income, err = s.repo.Find(domain.TransactionQuery{UserID: userID, Type: domain.TypeIncome, Window: window})
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	totals := aggregate(expenses, income)

	if len(expenses) == 0 && len(income) == 0 {
		return &domain.Insight{
			Summary:           fallbackSummary,
			Tips:              append([]string(nil), fallbackTips...),
			CategoryBreakdown: totals.byCategory,
			SpendingTrend:     domain.TrendStable,
		}, nil
	}

	answer, err := s.generate(ctx, expenses, income, totals)
	if err != nil {
		return nil, fmt.Errorf("generate insight: %w", err)
	}

	// The breakdown is always the locally computed value, never the
	// generator's.
	answer.CategoryBreakdown = totals.byCategory
	return answer, nil
}

type aggregation struct {
	totalExpenses decimal.Decimal
	totalIncome   decimal.Decimal
	netIncome     decimal.Decimal
	byCategory    map[string]decimal.Decimal
}

func aggregate(expenses, income []domain.Transaction) aggregation {
	totals := aggregation{
		totalExpenses: decimal.Zero,
		totalIncome:   decimal.Zero,
		byCategory:    map[string]decimal.Decimal{},
	}
	for _, transaction := range expenses {
		totals.totalExpenses = totals.totalExpenses.Add(transaction.Amount)
		current, ok := totals.byCategory[transaction.Category]
		if !ok {
			current = decimal.Zero
		}
		totals.byCategory[transaction.Category] = current.Add(transaction.Amount)
	}
	for _, transaction := range income {
		totals.totalIncome = totals.totalIncome.Add(transaction.Amount)
	}
	totals.netIncome = totals.totalIncome.Sub(totals.totalExpenses)
	return totals
}

func (s *InsightService) generate(ctx context.Context, expenses, income []domain.Transaction, totals aggregation) (*domain.Insight, error) {
	prompt := fmt.Sprintf(
		"Here are my transactions from the last %d days:\n%s\n"+
			"Total expenses: %s %s\nTotal income: %s %s\nNet income: %s %s\n\n"+
			"Respond with a JSON object of exactly this shape: "+
			`{"summary": string, "tips": [string], "spendingTrend": "increasing"|"decreasing"|"stable"}. `+
			"The summary should describe my spending patterns in two or three sentences and the tips should be short, actionable suggestions.",
		insightWindowDays,
		s.transcript(expenses, income),
		totals.totalExpenses.StringFixed(2), s.currency,
		totals.totalIncome.StringFixed(2), s.currency,
		totals.netIncome.StringFixed(2), s.currency,
	)

	var answer struct {
		Summary       string   `json:"summary"`
		Tips          []string `json:"tips"`
		SpendingTrend string   `json:"spendingTrend"`
	}
	if err := s.generator.Generate(ctx, insightSystemPrompt, prompt, &answer); err != nil {
		return nil, err
	}
	if answer.Summary == "" || !domain.IsValidSpendingTrend(answer.SpendingTrend) {
		return nil, fmt.Errorf("malformed generator answer: summary=%q trend=%q", answer.Summary, answer.SpendingTrend)
	}
	if answer.Tips == nil {
		answer.Tips = []string{}
	}

	return &domain.Insight{
		Summary:       answer.Summary,
		Tips:          answer.Tips,
		SpendingTrend: answer.SpendingTrend,
	}, nil
}

// transcript renders one line per transaction, expenses negative-signed and
// income positive-signed, in the order the sequences were fetched.
func (s *InsightService) transcript(expenses, income []domain.Transaction) string {
	var b strings.Builder
	for _, transaction := range expenses {
		fmt.Fprintf(&b, "%s: -%s %s - %s (%s)\n",
			transaction.Date.Format(dateLayout), transaction.Amount.StringFixed(2), s.currency,
			transaction.Description, transaction.Category)
	}
	for _, transaction := range income {
		fmt.Fprintf(&b, "%s: +%s %s - %s (%s)\n",
			transaction.Date.Format(dateLayout), transaction.Amount.StringFixed(2), s.currency,
			transaction.Description, transaction.Category)
	}
	return strings.TrimRight(b.String(), "\n")
}
