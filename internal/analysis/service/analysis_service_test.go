package service_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/bank"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/sentiment"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/service"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/theme"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

func solidPNG(t *testing.T, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func setupAnalysisService(random service.RandomSource) *service.AnalysisService {
	return service.NewAnalysisService(
		theme.NewRuleClassifier(),
		sentiment.NewLexiconAnalyzer(),
		random,
		false,
		logger.NewNop(),
	)
}

func TestAnalyze_SunsetImage(t *testing.T) {
	svc := setupAnalysisService(&fixedRandom{float: 0.5})

	got, err := svc.Analyze(context.Background(), service.Request{
		Image:    solidPNG(t, color.RGBA{R: 230, G: 120, B: 40, A: 255}),
		Platform: " LinkedIn ",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if got.Theme != domain.ThemeSunset {
		t.Errorf("expected sunset, got %s", got.Theme)
	}
	if got.Platform != domain.PlatformLinkedIn {
		t.Errorf("expected linkedin, got %s", got.Platform)
	}
	if got.Decision != domain.DecisionApproved {
		t.Errorf("expected approved, got %s", got.Decision)
	}
	if got.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", got.Confidence)
	}
	want := bank.Captions(domain.ThemeSunset, domain.PlatformLinkedIn)
	if len(got.Captions) != len(want) || got.Captions[0] != want[0] {
		t.Errorf("expected sunset linkedin captions, got %v", got.Captions)
	}
	if len(got.Hashtags) == 0 || len(got.Hashtags[0]) != 5 {
		t.Errorf("expected hashtag sets of five, got %v", got.Hashtags)
	}

	ia := got.ImageAnalysis
	if !ia.HasImage || ia.Brightness == nil || ia.AverageColor == nil {
		t.Fatalf("expected image details, got %+v", ia)
	}
	if *ia.Brightness < 129 || *ia.Brightness > 131 {
		t.Errorf("expected brightness near 130, got %v", *ia.Brightness)
	}
	if ia.Description != "Image analyzed - detected sunset theme" || ia.Confidence != 0.88 {
		t.Errorf("unexpected image analysis %+v", ia)
	}
	if got.Insights.VisualAppeal != "High" {
		t.Errorf("expected high visual appeal, got %s", got.Insights.VisualAppeal)
	}
}

func TestAnalyze_TextOnlyDefaults(t *testing.T) {
	svc := setupAnalysisService(&fixedRandom{float: 0})

	got, err := svc.Analyze(context.Background(), service.Request{Text: "Dinner with the family"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if got.Platform != domain.PlatformInstagram {
		t.Errorf("expected default platform instagram, got %s", got.Platform)
	}
	if got.Theme != domain.ThemeFood {
		t.Errorf("expected food from text, got %s", got.Theme)
	}
	if got.ImageAnalysis.HasImage || got.ImageAnalysis.Brightness != nil {
		t.Errorf("expected no image details, got %+v", got.ImageAnalysis)
	}
	if got.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", got.Confidence)
	}

	in := got.Insights
	if in.EngagementScore != 75 || in.Authenticity != "80%" {
		t.Errorf("expected pinned filler metrics, got %+v", in)
	}
	if in.BestTimeToPost != "9:00 AM - 11:00 AM" || in.EngagementPrediction != "High (85-95%)" {
		t.Errorf("unexpected picks %+v", in)
	}
	if in.ToxicityLevel != "Low" || in.Readability != "High" || in.VisualAppeal != "Medium" {
		t.Errorf("unexpected qualitative insights %+v", in)
	}
	if len(got.BestTimeSchedule) != 7 || got.BestTimeSchedule["Friday"] != "9:00 AM – 11:00 AM & 6:00 PM – 8:00 PM" {
		t.Errorf("unexpected schedule %v", got.BestTimeSchedule)
	}
}

func TestAnalyze_FillerUpperBounds(t *testing.T) {
	svc := setupAnalysisService(&fixedRandom{float: 0.999, intN: func(n int) int { return n - 1 }})

	got, err := svc.Analyze(context.Background(), service.Request{Text: "hello"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %v", got.Confidence)
	}
	if got.Insights.EngagementScore != 95 || got.Insights.Authenticity != "95%" {
		t.Errorf("expected upper bounds, got %+v", got.Insights)
	}
	if got.Insights.EngagementPrediction != "Strong (80-90%)" {
		t.Errorf("expected last prediction, got %s", got.Insights.EngagementPrediction)
	}
}

func TestAnalyze_StrongNegativeIsRejected(t *testing.T) {
	svc := setupAnalysisService(&fixedRandom{float: 0.5})

	got, err := svc.Analyze(context.Background(), service.Request{Text: "I hate this, worst and most terrible day"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Decision != domain.DecisionRejected {
		t.Fatalf("expected rejected, got %s", got.Decision)
	}
	if got.Confidence != got.TextAnalysis.Score {
		t.Errorf("expected confidence to equal sentiment score, got %v vs %v", got.Confidence, got.TextAnalysis.Score)
	}
	if got.Insights.ToxicityLevel != "High" {
		t.Errorf("expected high toxicity, got %s", got.Insights.ToxicityLevel)
	}
}

func TestAnalyze_InvalidImageReachesClassifier(t *testing.T) {
	classifier := &mockClassifier{}
	svc := service.NewAnalysisService(classifier, &mockAnalyzer{}, &fixedRandom{}, false, logger.NewNop())

	got, err := svc.Analyze(context.Background(), service.Request{Text: "beach", Image: "data:image/png;base64,@@@"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if classifier.lastInput.Image != nil {
		t.Errorf("expected classifier to run without decoded pixels")
	}
	if !classifier.lastInput.HasImage {
		t.Errorf("expected classifier to know a payload was sent")
	}
	if classifier.lastInput.Text != "beach" {
		t.Errorf("expected original text, got %q", classifier.lastInput.Text)
	}
	if got.ImageAnalysis.HasImage {
		t.Errorf("expected has_image false")
	}
}

func TestAnalyze_UndecodableImageTheme(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("BM..not-a-real-image"))

	cases := []struct {
		name       string
		classifier theme.Classifier
		text       string
		want       domain.Theme
	}{
		{"keywords use the text", theme.NewKeywordClassifier(), "golden sunset", domain.ThemeSunset},
		{"rules skip detection", theme.NewRuleClassifier(), "day at the beach", domain.ThemeGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewAnalysisService(tc.classifier, sentiment.NewLexiconAnalyzer(), &fixedRandom{}, false, logger.NewNop())

			got, err := svc.Analyze(context.Background(), service.Request{Text: tc.text, Image: payload})
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			if got.Theme != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got.Theme)
			}
		})
	}
}

func TestAnalyze_LongTextReadability(t *testing.T) {
	svc := setupAnalysisService(&fixedRandom{})

	got, err := svc.Analyze(context.Background(), service.Request{Text: strings.Repeat("a", 200)})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Insights.Readability != "Medium" {
		t.Errorf("expected medium readability, got %s", got.Insights.Readability)
	}
}

func TestAnalyze_CarriesAICaption(t *testing.T) {
	classifier := &mockClassifier{classifyFunc: func(ctx context.Context, in theme.Input) (theme.Classification, error) {
		return theme.Classification{Theme: domain.ThemeAnimal, Description: "A cat on a sofa."}, nil
	}}
	svc := service.NewAnalysisService(classifier, &mockAnalyzer{}, &fixedRandom{}, true, logger.NewNop())

	got, err := svc.Analyze(context.Background(), service.Request{Image: solidPNG(t, color.RGBA{A: 255})})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.ImageAnalysis.AICaption != "A cat on a sofa." {
		t.Errorf("expected ai caption, got %q", got.ImageAnalysis.AICaption)
	}
	if got.Theme != domain.ThemeAnimal {
		t.Errorf("expected animal, got %s", got.Theme)
	}
}

func TestAnalyze_ClassifierError(t *testing.T) {
	classifier := &mockClassifier{classifyFunc: func(ctx context.Context, in theme.Input) (theme.Classification, error) {
		return theme.Classification{}, errors.New("model crashed")
	}}
	svc := service.NewAnalysisService(classifier, &mockAnalyzer{}, &fixedRandom{}, false, logger.NewNop())

	if _, err := svc.Analyze(context.Background(), service.Request{Text: "x"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCapabilities(t *testing.T) {
	rules := service.NewAnalysisService(theme.NewRuleClassifier(), &mockAnalyzer{}, &fixedRandom{}, false, logger.NewNop())
	caps := rules.Capabilities()
	if caps.AIVision != "disabled" || caps.Mode != "rule-based" || caps.AnalysisType != "color_based_theme_detection" {
		t.Errorf("unexpected rule capabilities %+v", caps)
	}
	if len(caps.SupportsThemes) != 10 {
		t.Errorf("expected 10 themes, got %d", len(caps.SupportsThemes))
	}

	kw := service.NewAnalysisService(&mockClassifier{name: "described_keywords"}, &mockAnalyzer{}, &fixedRandom{}, true, logger.NewNop())
	caps = kw.Capabilities()
	if caps.AIVision != "enabled" || caps.Mode != "AI-powered" || caps.AnalysisType != "keyword_theme_detection" {
		t.Errorf("unexpected keyword capabilities %+v", caps)
	}
}

func TestSeededRandomSource_Bounds(t *testing.T) {
	r := service.NewSeededRandomSource(1, 2)
	for i := 0; i < 100; i++ {
		if v := r.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN out of range: %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}
