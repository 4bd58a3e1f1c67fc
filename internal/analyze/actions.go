package analyze

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/word-parser/models"
	"github.com/dtnitsch/word-parser/pkg/manifest"
	"github.com/dtnitsch/word-parser/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Flags are shared by the root command and the analyze subcommand.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "input-file",
			Aliases: []string{"i"},
			Usage:   "path to a source file to parse (repeatable)",
		},
		&cli.StringFlag{
			Name:    "rules-file",
			Aliases: []string{"r"},
			Usage:   "path to a file with words to exclude, one per line (default: built-in English list)",
		},
		&cli.IntFlag{
			Name:    "number-of-results",
			Aliases: []string{"n"},
			Value:   models.DefaultNumberOfResults,
			Usage:   "number of words to return",
		},
		&cli.BoolFlag{
			Name:    "use-generic-sort",
			Aliases: []string{"c"},
			Usage:   "rank by sorting every word instead of the bounded top-N list",
		},
		&cli.StringFlag{
			Name:  "stemmer",
			Value: string(models.StemPorter),
			Usage: "stemming algorithm: porter or snowball",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   string(models.FormatTable),
			Usage:   "output format: table, json or yaml",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the report to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "treat input files as HTML and count only their readable text",
		},
		&cli.StringFlag{
			Name:  "blocks",
			Usage: `only count matching blocks, e.g. "type:p|li,words:>=5,title:false"`,
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "warn when an input does not look like English",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file; flags set on the command line override it",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
}

// AnalyzeAction counts word stems in the input files and prints the top N.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	config, err := configFromContext(c)
	if err != nil {
		return err
	}

	summary, err := Run(config, logger)
	if err != nil {
		return err
	}

	output, err := manifest.Render(summary, config.Format)
	if err != nil {
		return err
	}

	if config.OutputPath != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(config.OutputPath, output); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report saved", "path", config.OutputPath, "words", len(summary.TopWords))
		return nil
	}

	if _, err := c.App.Writer.Write(output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// configFromContext builds the run config: defaults, then the YAML file if
// given, then every flag set on the command line.
func configFromContext(c *cli.Context) (*models.AnalysisConfig, error) {
	config := models.DefaultConfig()
	fromFile := c.IsSet("config")
	if fromFile {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	// Without a config file the flag defaults are the config defaults.
	use := func(name string) bool {
		return !fromFile || c.IsSet(name)
	}

	if use("input-file") {
		config.InputFiles = c.StringSlice("input-file")
	}
	if c.NArg() > 0 {
		config.InputFiles = append(config.InputFiles, c.Args().Slice()...)
	}
	if use("rules-file") {
		config.RulesFile = c.String("rules-file")
	}
	if use("number-of-results") {
		config.NumberOfResults = c.Int("number-of-results")
	}
	if use("use-generic-sort") {
		config.Strategy = models.StrategyBounded
		if c.Bool("use-generic-sort") {
			config.Strategy = models.StrategySort
		}
	}
	if use("output") {
		config.OutputPath = c.String("output")
	}
	if use("html") {
		config.HTML = c.Bool("html")
	}
	if use("blocks") {
		config.BlockFilter = c.String("blocks")
	}
	if use("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}

	var err error
	if use("stemmer") {
		if config.Stemmer, err = models.ParseStemAlgorithm(c.String("stemmer")); err != nil {
			return nil, err
		}
	}
	if use("format") {
		if config.Format, err = models.ParseOutputFormat(c.String("format")); err != nil {
			return nil, err
		}
	}
	if config.Strategy, err = models.ParseRankStrategy(string(config.Strategy)); err != nil {
		return nil, err
	}
	if config.Stemmer, err = models.ParseStemAlgorithm(string(config.Stemmer)); err != nil {
		return nil, err
	}
	if config.Format, err = models.ParseOutputFormat(string(config.Format)); err != nil {
		return nil, err
	}

	return config, nil
}
