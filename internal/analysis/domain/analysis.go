package domain

import "strings"

type Theme string

const (
	ThemeSunset  Theme = "sunset"
	ThemeOcean   Theme = "ocean"
	ThemeNature  Theme = "nature"
	ThemeFood    Theme = "food"
	ThemePeople  Theme = "people"
	ThemeAnimal  Theme = "animal"
	ThemeCity    Theme = "city"
	ThemeSky     Theme = "sky"
	ThemeNight   Theme = "night"
	ThemeBright  Theme = "bright"
	ThemeGeneral Theme = "general"
)

// SupportedThemes lists the specific themes a classifier can detect;
// general is the fallback and is not advertised.
func SupportedThemes() []Theme {
	return []Theme{
		ThemeSunset, ThemeOcean, ThemeNature, ThemeFood, ThemePeople,
		ThemeAnimal, ThemeCity, ThemeSky, ThemeNight, ThemeBright,
	}
}

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
)

func NormalizePlatform(raw string) Platform {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return PlatformInstagram
	}
	return Platform(p)
}

// Color is a mean RGB value in the 0..255 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (c Color) Brightness() float64 {
	return (c.R + c.G + c.B) / 3
}

// NeutralGray stands in for the average color when no image was supplied.
var NeutralGray = Color{R: 128, G: 128, B: 128}

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)
