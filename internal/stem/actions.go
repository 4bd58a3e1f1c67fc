package stem

import (
	"fmt"

	"github.com/dtnitsch/word-parser/models"
	"github.com/dtnitsch/word-parser/pkg/stemmer"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Flags for the stem command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "stemmer",
			Value: string(models.StemPorter),
			Usage: "stemming algorithm: porter or snowball",
		},
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: "print a word: stem mapping as YAML",
		},
	}
}

// StemAction prints the root of every word given as an argument.
func StemAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no words provided. Example: word-parser stem jumping jumped jumps")
	}

	algorithm, err := models.ParseStemAlgorithm(c.String("stemmer"))
	if err != nil {
		return err
	}
	s, err := stemmer.New(algorithm)
	if err != nil {
		return err
	}

	words := c.Args().Slice()
	if c.Bool("yaml") {
		var node yaml.Node
		node.Kind = yaml.MappingNode
		for _, w := range words {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: w},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Stem(w)},
			)
		}
		out, err := yaml.Marshal(&node)
		if err != nil {
			return fmt.Errorf("failed to marshal stems: %w", err)
		}
		fmt.Fprint(c.App.Writer, string(out))
		return nil
	}

	width := 0
	for _, w := range words {
		if len(w) > width {
			width = len(w)
		}
	}
	for _, w := range words {
		fmt.Fprintf(c.App.Writer, "%-*s -> %s\n", width, w, s.Stem(w))
	}
	return nil
}
