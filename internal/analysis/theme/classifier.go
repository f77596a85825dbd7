package theme

import (
	"context"
	"strings"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/imagedecode"
)

type Input struct {
	Text     string
	Image    *imagedecode.Decoded
	// HasImage reports that the request carried an image payload, even one
	// that failed to decode.
	HasImage bool
}

func (in Input) imageProvided() bool {
	return in.HasImage || in.Image != nil
}

type Classification struct {
	Theme domain.Theme
	// Description is the external model's caption, empty when none ran.
	Description string
}

// Classifier picks a theme for a request. Implementations must return
// ThemeGeneral when nothing matches rather than an error.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, in Input) (Classification, error)
}

type keywordRule struct {
	theme    domain.Theme
	keywords []string
}

// firstMatch reports the theme of the first rule with a keyword contained in
// the lowercased text.
func firstMatch(text string, rules []keywordRule) (domain.Theme, bool) {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.theme, true
			}
		}
	}
	return "", false
}
