package bank

import (
	"strings"
	"testing"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/domain"
)

func TestEveryThemeHasInstagramEntries(t *testing.T) {
	themes := append(domain.SupportedThemes(), domain.ThemeGeneral)
	for _, th := range themes {
		if len(Captions(th, domain.PlatformInstagram)) == 0 {
			t.Errorf("expected captions for %s", th)
		}
		sets := Hashtags(th, domain.PlatformInstagram)
		if len(sets) == 0 {
			t.Errorf("expected hashtags for %s", th)
		}
		for _, set := range sets {
			if len(set) != 5 {
				t.Errorf("%s: expected 5 tags per set, got %d", th, len(set))
			}
			for _, tag := range set {
				if !strings.HasPrefix(tag, "#") {
					t.Errorf("%s: expected tag %q to start with #", th, tag)
				}
			}
		}
	}
}

func TestCaptions_UnknownThemeFallsBackToGeneral(t *testing.T) {
	got := Captions("volcano", domain.PlatformFacebook)
	want := Captions(domain.ThemeGeneral, domain.PlatformFacebook)
	if len(got) == 0 || got[0] != want[0] {
		t.Errorf("expected general facebook captions, got %v", got)
	}
}

func TestCaptions_UnknownPlatformFallsBackToInstagram(t *testing.T) {
	got := Captions(domain.ThemeSunset, domain.PlatformTwitter)
	want := Captions(domain.ThemeSunset, domain.PlatformInstagram)
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("expected sunset instagram captions, got %v", got)
	}
}

func TestGeneralHasTwitter(t *testing.T) {
	tw := Captions(domain.ThemeGeneral, domain.PlatformTwitter)
	ig := Captions(domain.ThemeGeneral, domain.PlatformInstagram)
	if len(tw) == 0 || tw[0] == ig[0] {
		t.Errorf("expected dedicated twitter captions for general, got %v", tw)
	}
}

func TestLookupsReturnCopies(t *testing.T) {
	c := Captions(domain.ThemeOcean, domain.PlatformInstagram)
	c[0] = "mutated"
	if Captions(domain.ThemeOcean, domain.PlatformInstagram)[0] == "mutated" {
		t.Errorf("expected captions table to be unaffected by caller mutation")
	}

	h := Hashtags(domain.ThemeOcean, domain.PlatformInstagram)
	h[0][0] = "#mutated"
	if Hashtags(domain.ThemeOcean, domain.PlatformInstagram)[0][0] == "#mutated" {
		t.Errorf("expected hashtags table to be unaffected by caller mutation")
	}
}
