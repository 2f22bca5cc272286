package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"finsight/internal/finance/domain"
	"finsight/internal/finance/infrastructure"
	"finsight/internal/log"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// stubGenerator records prompts and plays back a canned JSON answer.
type stubGenerator struct {
	answer      string
	err         error
	calls       int
	lastUserMsg string
}

func (g *stubGenerator) Generate(_ context.Context, _, userPrompt string, out any) error {
	g.calls++
	g.lastUserMsg = userPrompt
	if g.err != nil {
		return g.err
	}
	return json.Unmarshal([]byte(g.answer), out)
}

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newInsightService(repo domain.TransactionRepository, generator Generator) *InsightService {
	service := NewInsightService(repo, generator, "USD", log.New("test"))
	service.SetClock(fixedClock(date(2024, time.March, 15)))
	return service
}

func TestGetInsights_NoDataReturnsFallbackWithoutExternalCall(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	generator := &stubGenerator{answer: `{}`}
	service := newInsightService(repo, generator)

	insight, err := service.GetInsights(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Zero(t, generator.calls, "fallback must never invoke the generator")
	assert.Contains(t, insight.Summary, "Start tracking")
	assert.Len(t, insight.Tips, 2)
	assert.Empty(t, insight.CategoryBreakdown)
	assert.Equal(t, domain.TrendStable, insight.SpendingTrend)
}

func TestGetInsights_AggregatesByCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{UserID: "user-1", Type: "expense", Amount: amount("10"), Category: "Food", Description: "Lunch", Date: date(2024, time.March, 10)},
			{UserID: "user-1", Type: "expense", Amount: amount("5"), Category: "Food", Description: "Coffee", Date: date(2024, time.March, 11)},
			{UserID: "user-1", Type: "expense", Amount: amount("20"), Category: "Travel", Description: "Train", Date: date(2024, time.March, 12)},
			{UserID: "user-1", Type: "income", Amount: amount("100"), Category: "Salary", Description: "Payday", Date: date(2024, time.March, 1)},
		},
	}
	generator := &stubGenerator{answer: `{"summary": "Mostly food.", "tips": ["Cook at home"], "spendingTrend": "stable"}`}
	service := newInsightService(repo, generator)

	insight, err := service.GetInsights(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, generator.calls)
	assert.True(t, insight.CategoryBreakdown["Food"].Equal(amount("15")))
	assert.True(t, insight.CategoryBreakdown["Travel"].Equal(amount("20")))
	assert.Len(t, insight.CategoryBreakdown, 2)
	assert.Equal(t, "Mostly food.", insight.Summary)
	assert.Equal(t, []string{"Cook at home"}, insight.Tips)
}

func TestGetInsights_BreakdownIsCommutative(t *testing.T) {
	forward := []domain.Transaction{
		{UserID: "user-1", Type: "expense", Amount: amount("10"), Category: "Food", Date: date(2024, time.March, 10)},
		{UserID: "user-1", Type: "expense", Amount: amount("5"), Category: "Food", Date: date(2024, time.March, 11)},
		{UserID: "user-1", Type: "expense", Amount: amount("20"), Category: "Travel", Date: date(2024, time.March, 12)},
	}
	reversed := []domain.Transaction{forward[2], forward[1], forward[0]}

	a := aggregate(forward, nil)
	b := aggregate(reversed, nil)

	assert.True(t, a.totalExpenses.Equal(amount("35")))
	assert.True(t, a.totalExpenses.Equal(b.totalExpenses))
	assert.True(t, a.byCategory["Food"].Equal(b.byCategory["Food"]))
	assert.True(t, a.byCategory["Travel"].Equal(b.byCategory["Travel"]))
}

func TestAggregate_NetIncome(t *testing.T) {
	expenses := []domain.Transaction{
		{Amount: amount("30.50"), Category: "Bills"},
	}
	income := []domain.Transaction{
		{Amount: amount("100.25"), Category: "Salary"},
	}

	totals := aggregate(expenses, income)

	assert.True(t, totals.totalExpenses.Equal(amount("30.50")))
	assert.True(t, totals.totalIncome.Equal(amount("100.25")))
	assert.True(t, totals.netIncome.Equal(amount("69.75")))
}

func TestGetInsights_TranscriptSignsAndOrder(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{UserID: "user-1", Type: "expense", Amount: amount("12.5"), Category: "Food", Description: "Lunch", Date: date(2024, time.March, 10)},
			{UserID: "user-1", Type: "income", Amount: amount("100"), Category: "Salary", Description: "Payday", Date: date(2024, time.March, 1)},
		},
	}
	generator := &stubGenerator{answer: `{"summary": "ok", "tips": [], "spendingTrend": "stable"}`}
	service := newInsightService(repo, generator)

	_, err := service.GetInsights(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Contains(t, generator.lastUserMsg, "2024-03-10: -12.50 USD - Lunch (Food)")
	assert.Contains(t, generator.lastUserMsg, "2024-03-01: +100.00 USD - Payday (Salary)")
	assert.Contains(t, generator.lastUserMsg, "Total expenses: 12.50 USD")
	assert.Contains(t, generator.lastUserMsg, "Net income: 87.50 USD")
}

func TestGetInsights_GeneratorErrorIsHardFailure(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{UserID: "user-1", Type: "expense", Amount: amount("10"), Category: "Food", Date: date(2024, time.March, 10)},
		},
	}
	generator := &stubGenerator{err: errors.New("upstream unavailable")}
	service := newInsightService(repo, generator)

	insight, err := service.GetInsights(context.Background(), "user-1")

	assert.Error(t, err)
	assert.Nil(t, insight, "no partial insight on generation failure")
}

func TestGetInsights_MalformedTrendIsHardFailure(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{UserID: "user-1", Type: "expense", Amount: amount("10"), Category: "Food", Date: date(2024, time.March, 10)},
		},
	}
	generator := &stubGenerator{answer: `{"summary": "ok", "tips": [], "spendingTrend": "sideways"}`}
	service := newInsightService(repo, generator)

	_, err := service.GetInsights(context.Background(), "user-1")

	assert.Error(t, err)
}

func TestGetInsights_QueriesTrailingThirtyDayWindow(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newInsightService(repo, &stubGenerator{answer: `{}`})

	_, err := service.GetInsights(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, repo.Queries, 2)
	types := map[string]bool{}
	for _, query := range repo.Queries {
		types[query.Type] = true
		assert.Equal(t, "user-1", query.UserID)
		assert.Equal(t, date(2024, time.February, 14), *query.Window.Start)
		assert.Equal(t, date(2024, time.March, 15), *query.Window.End)
	}
	assert.True(t, types[domain.TypeExpense])
	assert.True(t, types[domain.TypeIncome])
}
