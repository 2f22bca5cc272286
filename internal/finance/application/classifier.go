package application

import (
	"context"
	"fmt"
	"strings"

	"finsight/internal/finance/domain"
	"finsight/internal/log"
)

// Closed category vocabularies per transaction kind. They mirror the default
// category fixtures seeded by the migrations.
var (
	expenseVocabulary = []string{
		"Food", "Transportation", "Shopping", "Entertainment",
		"Bills", "Healthcare", "Travel", "Education", "Other",
	}
	incomeVocabulary = []string{
		"Salary", "Freelance", "Investment", "Business", "Gift", "Other Income",
	}
)

const (
	defaultExpenseCategory = "Other"
	defaultIncomeCategory  = "Other Income"
)

const classifierSystemPrompt = "You classify personal finance transactions into a fixed set of categories. " +
	"Answer with strict JSON only."

type ClassifierService struct {
	generator Generator
	logger    *log.Logger
}

func NewClassifierService(generator Generator, logger *log.Logger) *ClassifierService {
	return &ClassifierService{generator: generator, logger: logger}
}

// Categorize picks a category for a free-text description. It never fails:
// any generator error, empty answer or answer outside the closed vocabulary
// yields the kind-appropriate default instead.
func (s *ClassifierService) Categorize(ctx context.Context, description, transactionType string) string {
	vocabulary, fallback := expenseVocabulary, defaultExpenseCategory
	if transactionType == domain.TypeIncome {
		vocabulary, fallback = incomeVocabulary, defaultIncomeCategory
	}

	prompt := fmt.Sprintf(
		"Classify this %s transaction description into exactly one of these categories: %s.\n"+
			"Description: %q\n"+
			`Respond with a JSON object of exactly this shape: {"category": string}.`,
		transactionType, strings.Join(vocabulary, ", "), description,
	)

	var answer struct {
		Category string `json:"category"`
	}
	if err := s.generator.Generate(ctx, classifierSystemPrompt, prompt, &answer); err != nil {
		s.logger.Warn("categorization failed, using default", "error", err, "type", transactionType)
		return fallback
	}

	category := strings.TrimSpace(answer.Category)
	for _, name := range vocabulary {
		if strings.EqualFold(category, name) {
			return name
		}
	}
	return fallback
}
