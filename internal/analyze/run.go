package analyze

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/word-parser/models"
	"github.com/dtnitsch/word-parser/pkg/analytics"
	"github.com/dtnitsch/word-parser/pkg/detector"
	"github.com/dtnitsch/word-parser/pkg/extractor"
	"github.com/dtnitsch/word-parser/pkg/manifest"
	"github.com/dtnitsch/word-parser/pkg/mapreduce"
	"github.com/dtnitsch/word-parser/pkg/parser"
	"github.com/dtnitsch/word-parser/pkg/stemmer"
	"github.com/dtnitsch/word-parser/pkg/stopwords"
	"github.com/dtnitsch/word-parser/pkg/storage"
	"github.com/dtnitsch/word-parser/pkg/tokenizer"
)

// Run executes one analysis and returns its report. Any unreadable input or
// rules file aborts the run.
func Run(cfg *models.AnalysisConfig, logger *slog.Logger) (*manifest.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stop, err := loadStopWords(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	st, err := stemmer.New(cfg.Stemmer)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded stop words", "count", stop.Len(), "rules_file", cfg.RulesFile, "stemmer", stemmer.Describe(st))

	blocks, err := extractor.ParseStrategy(cfg.BlockFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse block filter: %w", err)
	}

	a := analytics.New(tokenizer.New(stop), st, analytics.WithLogger(logger))
	p := &parser.Parser{}
	s := &storage.Storage{}

	var det *detector.Detector
	if cfg.DetectLanguage {
		det = detector.New()
	}

	// Map stage: one frequency map per input
	inputs := make([]manifest.InputResult, 0, len(cfg.InputFiles))
	intermediate := make([]map[string]int, 0, len(cfg.InputFiles))
	for _, path := range cfg.InputFiles {
		doc, err := loadDocument(p, s, path, cfg.HTML)
		if err != nil {
			return nil, err
		}
		stats, err := s.GetFileStats(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat input %s: %w", path, err)
		}
		doc = extractor.FilterDocument(doc, blocks)

		counts := mapreduce.Map(doc, a)
		intermediate = append(intermediate, counts)

		result := manifest.InputResult{
			Path:       path,
			HTML:       cfg.HTML,
			SizeBytes:  stats.SizeBytes,
			Lines:      len(doc.Lines()),
			WordCounts: counts,
		}
		if det != nil {
			lang := det.Detect(doc.ToPlainText())
			result.Language = lang.Language
			if lang.Reliable && !lang.IsEnglish() {
				logger.Warn("Input does not look like English; stems may be meaningless",
					"path", path, "language", lang.Language, "english_confidence", lang.EnglishConfidence)
			}
		}
		inputs = append(inputs, result)

		logger.Info("Counted input", "path", path, "lines", result.Lines, "distinct_words", len(counts))
	}

	// Reduce stage
	merged := mapreduce.Reduce(intermediate)

	if cfg.Strategy == models.StrategySort {
		logger.Info("Using generic frequency sort")
	}
	top := mapreduce.TopWords(merged, cfg.NumberOfResults, cfg.Strategy)

	return manifest.GenerateSummary(cfg, stop.Len(), inputs, merged, top), nil
}

func loadStopWords(rulesFile string) (*stopwords.Set, error) {
	if rulesFile == "" {
		return stopwords.Default(), nil
	}
	stop, err := stopwords.LoadFile(rulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load stop words: %w", err)
	}
	return stop, nil
}

func loadDocument(p *parser.Parser, s *storage.Storage, path string, html bool) (*models.Document, error) {
	if html {
		data, err := s.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input %s: %w", path, err)
		}
		doc, err := p.ParseHTML(path, string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse input %s: %w", path, err)
		}
		return doc, nil
	}

	f, err := s.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	defer f.Close()

	doc, err := p.ParseText(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return doc, nil
}
