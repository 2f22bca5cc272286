package application

import (
	"context"
	"errors"
	"testing"

	"finsight/internal/log"

	"github.com/stretchr/testify/assert"
)

func newClassifier(generator Generator) *ClassifierService {
	return NewClassifierService(generator, log.New("test"))
}

func TestCategorize_ReturnsVocabularyAnswer(t *testing.T) {
	generator := &stubGenerator{answer: `{"category": "Food"}`}
	service := newClassifier(generator)

	category := service.Categorize(context.Background(), "sushi dinner", "expense")

	assert.Equal(t, "Food", category)
	assert.Equal(t, 1, generator.calls)
}

func TestCategorize_NormalizesCase(t *testing.T) {
	service := newClassifier(&stubGenerator{answer: `{"category": "travel"}`})

	category := service.Categorize(context.Background(), "flight to Rome", "expense")

	assert.Equal(t, "Travel", category)
}

func TestCategorize_GeneratorErrorFallsBackToDefault(t *testing.T) {
	service := newClassifier(&stubGenerator{err: errors.New("upstream unavailable")})

	assert.Equal(t, "Other", service.Categorize(context.Background(), "mystery purchase", "expense"))
	assert.Equal(t, "Other Income", service.Categorize(context.Background(), "mystery deposit", "income"))
}

func TestCategorize_EmptyAnswerFallsBackToDefault(t *testing.T) {
	service := newClassifier(&stubGenerator{answer: `{"category": ""}`})

	assert.Equal(t, "Other", service.Categorize(context.Background(), "something", "expense"))
}

func TestCategorize_OutOfVocabularyAnswerFallsBackToDefault(t *testing.T) {
	service := newClassifier(&stubGenerator{answer: `{"category": "Cryptocurrency"}`})

	assert.Equal(t, "Other", service.Categorize(context.Background(), "bought bitcoin", "expense"))
}

func TestCategorize_IncomeUsesIncomeVocabulary(t *testing.T) {
	service := newClassifier(&stubGenerator{answer: `{"category": "Salary"}`})

	assert.Equal(t, "Salary", service.Categorize(context.Background(), "monthly paycheck", "income"))
}
