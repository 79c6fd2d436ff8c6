// Package langid implements the language identification collaborator. It
// wraps a statistical detector and applies the fallback policy the rest of
// the pipeline relies on: a language code always comes back, never an
// identification failure.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

const (
	// FallbackLanguage is returned when the detector cannot identify the
	// text or identifies a language outside the supported set.
	FallbackLanguage = "en"

	variantConfidence     = 0.85
	unsupportedConfidence = 0.5
	failureConfidence     = 0.3
)

// SupportedLanguages is the set of ISO 639-1 codes statements may carry.
var SupportedLanguages = []string{
	"no", "sv", "da", "en", "de", "fr", "nl", "it",
	"es", "pt", "fi", "is", "lv", "lt", "et",
}

// variantMapping folds regional variants onto their canonical code.
var variantMapping = map[string]string{
	"nb": "no", // Norwegian Bokmål
	"nn": "no", // Norwegian Nynorsk
	"se": "sv", // occasionally reported for Swedish
}

// Identifier detects the language of legal text.
type Identifier struct {
	detector  lingua.LanguageDetector
	supported map[string]struct{}
}

// NewIdentifier builds an identifier restricted to the supported languages.
func NewIdentifier() *Identifier {
	candidates := []lingua.Language{
		lingua.Bokmal, lingua.Nynorsk, lingua.Swedish, lingua.Danish,
		lingua.English, lingua.German, lingua.French, lingua.Dutch,
		lingua.Italian, lingua.Spanish, lingua.Portuguese, lingua.Finnish,
		lingua.Icelandic, lingua.Latvian, lingua.Lithuanian, lingua.Estonian,
	}

	supported := make(map[string]struct{}, len(SupportedLanguages))
	for _, code := range SupportedLanguages {
		supported[code] = struct{}{}
	}

	return &Identifier{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
		supported: supported,
	}
}

// Identify returns the language code and a confidence for text. Regional
// variants map to their canonical code; anything else falls back to
// FallbackLanguage with low confidence.
func (i *Identifier) Identify(text string) (string, float64) {
	detected, ok := i.detector.DetectLanguageOf(text)
	if !ok {
		return FallbackLanguage, failureConfidence
	}

	code := strings.ToLower(detected.IsoCode639_1().String())
	return i.resolve(code, i.detector.ComputeLanguageConfidence(text, detected))
}

// resolve applies the fallback policy to a raw detector code.
func (i *Identifier) resolve(code string, confidence float64) (string, float64) {
	if _, ok := i.supported[code]; ok {
		return code, confidence
	}
	if canonical, ok := variantMapping[code]; ok {
		return canonical, variantConfidence
	}
	return FallbackLanguage, unsupportedConfidence
}

// Normalize maps a raw language code onto the supported set using the same
// fallback policy as Identify. Useful for codes supplied by callers.
func Normalize(code string) string {
	code = strings.ToLower(code)
	if canonical, ok := variantMapping[code]; ok {
		return canonical
	}
	for _, supported := range SupportedLanguages {
		if code == supported {
			return code
		}
	}
	return FallbackLanguage
}
