package service_test

import (
	"context"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/theme"
)

type fixedRandom struct {
	float float64
	intN  func(n int) int
}

func (f *fixedRandom) Float64() float64 { return f.float }

func (f *fixedRandom) IntN(n int) int {
	if f.intN != nil {
		return f.intN(n)
	}
	return 0
}

type mockClassifier struct {
	name         string
	classifyFunc func(ctx context.Context, in theme.Input) (theme.Classification, error)
	lastInput    theme.Input
}

func (m *mockClassifier) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockClassifier) Classify(ctx context.Context, in theme.Input) (theme.Classification, error) {
	m.lastInput = in
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, in)
	}
	return theme.Classification{Theme: domain.ThemeGeneral}, nil
}

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, text string) (domain.Sentiment, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, text string) (domain.Sentiment, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, text)
	}
	return domain.Sentiment{Label: domain.SentimentPositive, Score: 0.92}, nil
}
