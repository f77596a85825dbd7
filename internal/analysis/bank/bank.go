// Package bank holds the literal caption and hashtag tables keyed by theme
// and platform.
package bank

import "github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"

// Captions returns the captions for theme on platform. An unknown theme falls
// back to general and a platform the theme has no entry for falls back to
// instagram. The returned slice is a copy.
func Captions(theme domain.Theme, platform domain.Platform) []string {
	byPlatform, ok := captions[theme]
	if !ok {
		byPlatform = captions[domain.ThemeGeneral]
	}
	list, ok := byPlatform[platform]
	if !ok {
		list = byPlatform[domain.PlatformInstagram]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Hashtags returns the hashtag sets for theme on platform with the same
// fallbacks as Captions.
func Hashtags(theme domain.Theme, platform domain.Platform) [][]string {
	byPlatform, ok := hashtags[theme]
	if !ok {
		byPlatform = hashtags[domain.ThemeGeneral]
	}
	sets, ok := byPlatform[platform]
	if !ok {
		sets = byPlatform[domain.PlatformInstagram]
	}
	out := make([][]string, len(sets))
	for i, set := range sets {
		out[i] = append([]string(nil), set...)
	}
	return out
}
