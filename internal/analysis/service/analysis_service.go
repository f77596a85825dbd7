package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/bank"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/imagedecode"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/sentiment"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/service/dto"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/theme"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

const (
	imageConfidence         = 0.88
	readableTextLength      = 200
	minApprovedConfidence   = 0.85
	approvedConfidenceRange = 0.10
)

type Request struct {
	Text     string
	Image    string
	Platform string
	// UserID is set when the caller presented a valid token.
	UserID string
}

type AnalysisService struct {
	classifier theme.Classifier
	analyzer   sentiment.Analyzer
	random     RandomSource
	aiVision   bool
	log        *logger.Logger
}

func NewAnalysisService(
	classifier theme.Classifier,
	analyzer sentiment.Analyzer,
	random RandomSource,
	aiVision bool,
	log *logger.Logger,
) *AnalysisService {
	return &AnalysisService{
		classifier: classifier,
		analyzer:   analyzer,
		random:     random,
		aiVision:   aiVision,
		log:        log,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, req Request) (dto.Analysis, error) {
	platform := domain.NormalizePlatform(req.Platform)

	fields := logger.Fields{
		"action":    "analyze_request",
		"platform":  string(platform),
		"has_image": req.Image != "",
		"text_len":  utf8.RuneCountInString(req.Text),
	}
	if req.UserID != "" {
		fields["user_id"] = req.UserID
	}
	s.log.WithFields(ctx, fields).Info("analysis requested")

	img := s.decodeImage(ctx, req.Image)

	start := time.Now()
	classification, err := s.classifier.Classify(ctx, theme.Input{
		Text:     req.Text,
		Image:    img,
		HasImage: strings.TrimSpace(req.Image) != "",
	})
	observeClassifier(s.classifier.Name(), start)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action":     "analyze_classify_failed",
			"classifier": s.classifier.Name(),
		}).Errorf("theme classification failed: %v", err)
		return dto.Analysis{}, fmt.Errorf("classify theme: %w", err)
	}

	mood, err := s.analyzer.Analyze(ctx, req.Text)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "analyze_sentiment_failed",
		}).Errorf("sentiment analysis failed: %v", err)
		return dto.Analysis{}, fmt.Errorf("analyze sentiment: %w", err)
	}

	decision := sentiment.Decide(mood)
	result := dto.Analysis{
		Decision:         decision,
		Confidence:       s.confidence(decision, mood),
		Platform:         platform,
		Theme:            classification.Theme,
		Captions:         bank.Captions(classification.Theme, platform),
		Hashtags:         bank.Hashtags(classification.Theme, platform),
		BestTimeSchedule: schedule(),
		Insights:         s.insights(req.Text, img != nil, mood, decision),
		TextAnalysis:     mood,
		ImageAnalysis:    imageAnalysis(classification, img),
	}

	recordAnalysis(result.Theme, platform, decision)
	s.log.WithFields(ctx, logger.Fields{
		"action":   "analyze_success",
		"theme":    string(result.Theme),
		"platform": string(platform),
		"decision": string(decision),
	}).Infof("analysis complete: %d captions", len(result.Captions))

	return result, nil
}

// decodeImage returns nil for an undecodable payload; classifiers still see
// that one was sent.
func (s *AnalysisService) decodeImage(ctx context.Context, payload string) *imagedecode.Decoded {
	if strings.TrimSpace(payload) == "" {
		recordImage("none")
		return nil
	}

	img, err := imagedecode.Decode(payload)
	if err != nil {
		recordImage("invalid")
		s.log.WithFields(ctx, logger.Fields{
			"action": "analyze_image_decode_failed",
		}).Warnf("image ignored: %v", err)
		return nil
	}

	recordImage(img.Format)
	return img
}

func (s *AnalysisService) confidence(decision domain.Decision, mood domain.Sentiment) float64 {
	if decision == domain.DecisionRejected {
		return mood.Score
	}
	return round(minApprovedConfidence+s.random.Float64()*approvedConfidenceRange, 2)
}

func (s *AnalysisService) insights(text string, hasImage bool, mood domain.Sentiment, decision domain.Decision) dto.Insights {
	toxicity := "Low"
	if decision == domain.DecisionRejected {
		toxicity = "High"
	}
	readability := "Medium"
	if utf8.RuneCountInString(text) < readableTextLength {
		readability = "High"
	}
	visual := "Medium"
	if hasImage {
		visual = "High"
	}

	return dto.Insights{
		Sentiment:            mood.Label,
		EngagementScore:      75 + s.random.IntN(21),
		ToxicityLevel:        toxicity,
		Readability:          readability,
		VisualAppeal:         visual,
		Authenticity:         fmt.Sprintf("%d%%", 80+s.random.IntN(16)),
		BestTimeToPost:       postingWindows[s.random.IntN(len(postingWindows))],
		EngagementPrediction: engagementPredictions[s.random.IntN(len(engagementPredictions))],
	}
}

func imageAnalysis(c theme.Classification, img *imagedecode.Decoded) dto.ImageAnalysis {
	out := dto.ImageAnalysis{
		ThemeDetected: c.Theme,
		AIAnalysis:    true,
		Description:   fmt.Sprintf("Image analyzed - detected %s theme", c.Theme),
		Confidence:    imageConfidence,
		HasImage:      img != nil,
		AICaption:     c.Description,
	}
	if img != nil {
		brightness := round(img.Average.Brightness(), 1)
		avg := domain.Color{
			R: round(img.Average.R, 1),
			G: round(img.Average.G, 1),
			B: round(img.Average.B, 1),
		}
		out.Brightness = &brightness
		out.AverageColor = &avg
	}
	return out
}

// Capabilities describes the configured analysis pipeline for the health
// endpoint.
func (s *AnalysisService) Capabilities() dto.Capabilities {
	caps := dto.Capabilities{
		AIVision:       "disabled",
		AnalysisType:   "color_based_theme_detection",
		Mode:           "rule-based",
		SupportsThemes: domain.SupportedThemes(),
	}
	if strings.HasSuffix(s.classifier.Name(), "keywords") {
		caps.AnalysisType = "keyword_theme_detection"
	}
	if s.aiVision {
		caps.AIVision = "enabled"
		caps.Mode = "AI-powered"
	}
	return caps
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
