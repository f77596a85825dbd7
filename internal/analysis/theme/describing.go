package theme

import (
	"context"
	"strings"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/imagedecode"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

// Describer produces a one-sentence description of an image.
type Describer interface {
	Describe(ctx context.Context, img *imagedecode.Decoded) (string, error)
}

// DescribingClassifier enriches the request text with an image description
// before delegating. A failed description is logged and the request is
// classified on its original text.
type DescribingClassifier struct {
	next      Classifier
	describer Describer
	log       *logger.Logger
}

func NewDescribingClassifier(next Classifier, describer Describer, log *logger.Logger) *DescribingClassifier {
	return &DescribingClassifier{next: next, describer: describer, log: log}
}

func (c *DescribingClassifier) Name() string { return "described_" + c.next.Name() }

func (c *DescribingClassifier) Classify(ctx context.Context, in Input) (Classification, error) {
	if in.Image == nil {
		return c.next.Classify(ctx, in)
	}

	description, err := c.describer.Describe(ctx, in.Image)
	if err != nil {
		c.log.WithFields(ctx, logger.Fields{
			"action": "describe_image_failed",
		}).Warnf("image description unavailable: %v", err)
		return c.next.Classify(ctx, in)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return c.next.Classify(ctx, in)
	}

	enriched := in
	enriched.Text = in.Text + " " + description
	result, err := c.next.Classify(ctx, enriched)
	if err != nil {
		return Classification{}, err
	}
	result.Description = description
	return result, nil
}
