package theme

import (
	"context"
	"strings"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
)

var textRules = []keywordRule{
	{domain.ThemeSunset, []string{"sunset", "dusk", "evening", "orange sky", "golden hour"}},
	{domain.ThemeOcean, []string{"ocean", "sea", "beach", "water", "wave"}},
	{domain.ThemeNature, []string{"tree", "forest", "plant", "garden", "nature", "green"}},
	{domain.ThemeFood, []string{"food", "meal", "dish", "plate", "eating"}},
	{domain.ThemePeople, []string{"person", "people", "man", "woman", "child", "face"}},
	{domain.ThemeAnimal, []string{"dog", "cat", "animal", "pet", "bird"}},
	{domain.ThemeCity, []string{"building", "city", "street", "urban"}},
	{domain.ThemeSky, []string{"sky", "cloud", "blue sky"}},
}

// Hints checked after the color thresholds.
var hintRules = []keywordRule{
	{domain.ThemeFood, []string{"food", "meal", "dish", "eat", "dinner", "lunch"}},
	{domain.ThemePeople, []string{"people", "friend", "family", "selfie", "person", "group"}},
	{domain.ThemeAnimal, []string{"dog", "cat", "pet", "animal", "bird"}},
	{domain.ThemeCity, []string{"city", "urban", "building", "street"}},
}

const (
	nightBrightness  = 80
	brightBrightness = 180
)

// RuleClassifier matches text keywords first, then thresholds on the mean
// image color, then secondary text hints and finally brightness. An image
// payload that failed to decode skips detection entirely.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (*RuleClassifier) Name() string { return "rules" }

func (*RuleClassifier) Classify(_ context.Context, in Input) (Classification, error) {
	if in.Image == nil && strings.TrimSpace(in.Text) == "" {
		return Classification{Theme: domain.ThemeGeneral}, nil
	}
	if in.HasImage && in.Image == nil {
		return Classification{Theme: domain.ThemeGeneral}, nil
	}

	text := strings.ToLower(in.Text)
	if t, ok := firstMatch(text, textRules); ok {
		return Classification{Theme: t}, nil
	}

	c := domain.NeutralGray
	if in.Image != nil {
		c = in.Image.Average
	}
	if t, ok := byColor(c); ok {
		return Classification{Theme: t}, nil
	}

	if t, ok := firstMatch(text, hintRules); ok {
		return Classification{Theme: t}, nil
	}

	switch b := c.Brightness(); {
	case b < nightBrightness:
		return Classification{Theme: domain.ThemeNight}, nil
	case b > brightBrightness:
		return Classification{Theme: domain.ThemeBright}, nil
	}
	return Classification{Theme: domain.ThemeGeneral}, nil
}

func byColor(c domain.Color) (domain.Theme, bool) {
	switch {
	case c.R > 150 && c.G > 80 && c.G < 150 && c.B < 100:
		return domain.ThemeSunset, true
	case c.B > c.R && c.B > c.G && c.B > 100:
		return domain.ThemeOcean, true
	case c.G > c.R && c.G > c.B && c.G > 80:
		return domain.ThemeNature, true
	case c.B > 150 && c.R > 100 && c.G > 100:
		return domain.ThemeSky, true
	}
	return "", false
}
