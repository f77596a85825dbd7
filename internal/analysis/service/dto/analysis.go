package dto

import "github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"

type Analysis struct {
	Decision         domain.Decision   `json:"decision"`
	Confidence       float64           `json:"confidence"`
	Platform         domain.Platform   `json:"platform"`
	Theme            domain.Theme      `json:"theme"`
	Captions         []string          `json:"captions"`
	Hashtags         [][]string        `json:"hashtags"`
	BestTimeSchedule map[string]string `json:"best_time_schedule"`
	Insights         Insights          `json:"insights"`
	TextAnalysis     domain.Sentiment  `json:"text_analysis"`
	ImageAnalysis    ImageAnalysis     `json:"image_analysis"`
}

type Insights struct {
	Sentiment            domain.SentimentLabel `json:"sentiment"`
	EngagementScore      int                   `json:"engagement_score"`
	ToxicityLevel        string                `json:"toxicity_level"`
	Readability          string                `json:"readability"`
	VisualAppeal         string                `json:"visual_appeal"`
	Authenticity         string                `json:"authenticity"`
	BestTimeToPost       string                `json:"best_time_to_post"`
	EngagementPrediction string                `json:"engagement_prediction"`
}

type ImageAnalysis struct {
	ThemeDetected domain.Theme  `json:"theme_detected"`
	AIAnalysis    bool          `json:"ai_analysis"`
	Description   string        `json:"description"`
	Confidence    float64       `json:"confidence"`
	HasImage      bool          `json:"has_image"`
	Brightness    *float64      `json:"brightness,omitempty"`
	AverageColor  *domain.Color `json:"average_color,omitempty"`
	AICaption     string        `json:"ai_caption,omitempty"`
}

type Capabilities struct {
	AIVision       string         `json:"ai_vision"`
	AnalysisType   string         `json:"analysis_type"`
	Mode           string         `json:"mode"`
	SupportsThemes []domain.Theme `json:"supports_themes"`
}
