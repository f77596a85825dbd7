package theme

import (
	"context"
	"strings"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
)

var imageKeywordRules = []keywordRule{
	{domain.ThemeSunset, []string{"sunset", "evening", "dusk", "golden hour", "sky", "orange", "red", "horizon"}},
	{domain.ThemeNature, []string{"nature", "trees", "forest", "mountains", "landscape", "outdoor", "green", "scenic"}},
	{domain.ThemePeople, []string{"people", "person", "face", "portrait", "selfie", "group", "friends", "family"}},
	{domain.ThemeFood, []string{"food", "meal", "dinner", "lunch", "breakfast", "cooking", "restaurant", "delicious"}},
}

// KeywordClassifier is the lightweight mode: it only looks at the text that
// accompanies an image payload and never inspects pixels, so an undecodable
// upload still counts. Text without an image is general.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (*KeywordClassifier) Name() string { return "keywords" }

func (*KeywordClassifier) Classify(_ context.Context, in Input) (Classification, error) {
	if !in.imageProvided() {
		return Classification{Theme: domain.ThemeGeneral}, nil
	}
	if t, ok := firstMatch(strings.ToLower(in.Text), imageKeywordRules); ok {
		return Classification{Theme: t}, nil
	}
	return Classification{Theme: domain.ThemeGeneral}, nil
}
