package sentiment

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
)

type Analyzer interface {
	Analyze(ctx context.Context, text string) (domain.Sentiment, error)
}

const (
	neutralScore = 0.5
	defaultScore = 0.92
	maxScore     = 0.99
	rejectAbove  = 0.8
)

var positiveWords = wordSet(
	"love", "loved", "lovely", "great", "amazing", "awesome", "happy", "beautiful", "good", "wonderful",
	"best", "fantastic", "excited", "exciting", "grateful", "blessed", "fun", "joy", "perfect", "nice",
	"delicious", "stunning", "gorgeous", "enjoy", "enjoyed", "proud", "incredible", "brilliant", "thankful",
	"peaceful", "magical", "cute", "adorable", "inspiring", "glad",
)

var negativeWords = wordSet(
	"hate", "hated", "terrible", "awful", "bad", "worst", "sad", "angry", "ugly", "horrible",
	"disgusting", "stupid", "kill", "die", "annoying", "boring", "disappointed", "depressed", "furious",
	"pathetic", "trash", "useless", "hurt", "violent", "nasty", "idiot", "miserable", "scam", "toxic",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// LexiconAnalyzer counts positive and negative words. Text with no hits or
// a tie reads as positive, empty text as neutral.
type LexiconAnalyzer struct{}

func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{}
}

func (*LexiconAnalyzer) Analyze(_ context.Context, text string) (domain.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Sentiment{Label: domain.SentimentNeutral, Score: neutralScore}, nil
	}

	var pos, neg int
	for _, token := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	}) {
		if _, ok := positiveWords[token]; ok {
			pos++
		}
		if _, ok := negativeWords[token]; ok {
			neg++
		}
	}

	if pos == neg {
		return domain.Sentiment{Label: domain.SentimentPositive, Score: defaultScore}, nil
	}

	label := domain.SentimentPositive
	if neg > pos {
		label = domain.SentimentNegative
	}
	diff := math.Abs(float64(pos - neg))
	score := neutralScore + neutralScore*diff/float64(pos+neg)
	return domain.Sentiment{Label: label, Score: round2(math.Min(score, maxScore))}, nil
}

// Decide rejects strongly negative text and approves everything else.
func Decide(s domain.Sentiment) domain.Decision {
	if s.Label == domain.SentimentNegative && s.Score > rejectAbove {
		return domain.DecisionRejected
	}
	return domain.DecisionApproved
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
