// Package detector guesses the dominant language of a corpus. The stemmer
// only understands English, so a non-English corpus is worth a warning.
package detector

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// minSampleRunes is the shortest sample worth classifying.
const minSampleRunes = 20

// maxSampleBytes caps how much text is handed to the classifier.
const maxSampleBytes = 64 * 1024

// candidates are the languages told apart; a wider set costs memory for
// little benefit since the only question is "English or not".
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Result is the outcome of a language check.
type Result struct {
	Language          string  `json:"language" yaml:"language"`
	IsoCode           string  `json:"iso_code" yaml:"iso_code"`
	EnglishConfidence float64 `json:"english_confidence" yaml:"english_confidence"`
	Reliable          bool    `json:"reliable" yaml:"reliable"`
}

// IsEnglish reports whether the text was classified as English.
func (r Result) IsEnglish() bool {
	return r.Language == lingua.English.String()
}

// Detector wraps a lingua language detector.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector. Building loads language models, so do it once per run.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect classifies text. Reliable is false when the sample is too short or
// no language could be determined.
func (d *Detector) Detect(text string) Result {
	sample := strings.TrimSpace(text)
	sample = truncate(sample, maxSampleBytes)

	res := Result{Language: "unknown"}
	if len([]rune(sample)) < minSampleRunes {
		return res
	}

	language, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return res
	}

	res.Language = language.String()
	res.IsoCode = strings.ToLower(language.IsoCode639_1().String())
	res.EnglishConfidence = d.detector.ComputeLanguageConfidence(sample, lingua.English)
	res.Reliable = true
	return res
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
