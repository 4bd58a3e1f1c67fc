package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/word-parser/internal/analyze"
	"github.com/dtnitsch/word-parser/internal/stem"
	"github.com/dtnitsch/word-parser/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "word-parser",
		Usage: "report the most common word stems in a document",
		Description: "Removes stop words and non-alphabetic characters, reduces every word to its\n" +
			"root with the Porter stemmer and prints the N most frequent roots.\n\n" +
			"Example:\n" +
			"  word-parser -i book.txt -r stopwords.txt -n 20",
		Flags:  analyze.Flags(),
		Action: analyze.AnalyzeAction,
		Commands: []*cli.Command{
			{
				Name:    "analyze",
				Aliases: []string{"top"},
				Usage:   "count word stems in one or more files and print the top N",
				Flags:   analyze.Flags(),
				Action:  analyze.AnalyzeAction,
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML cheat sheet of common invocations",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
			{
				Name:      "stem",
				Usage:     "print the root of each word given",
				ArgsUsage: "WORD...",
				Flags:     stem.Flags(),
				Action:    stem.StemAction,
			},
		},
	}
}
