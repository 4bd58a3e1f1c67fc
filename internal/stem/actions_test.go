package stem

import (
	"bytes"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func runStem(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name:   "word-parser",
		Writer: &out,
		Commands: []*cli.Command{
			{Name: "stem", Flags: Flags(), Action: StemAction},
		},
	}
	err := app.Run(append([]string{"word-parser", "stem"}, args...))
	return out.String(), err
}

func TestStemAction(t *testing.T) {
	out, err := runStem(t, "jumping", "story", "a")
	if err != nil {
		t.Fatalf("StemAction() error = %v", err)
	}

	want := "jumping -> jump\n" +
		"story   -> stori\n" +
		"a       -> a\n"
	if out != want {
		t.Errorf("StemAction() output =\n%q\nwant\n%q", out, want)
	}
}

func TestStemAction_YAML(t *testing.T) {
	out, err := runStem(t, "--yaml", "jumped", "universe")
	if err != nil {
		t.Fatalf("StemAction() error = %v", err)
	}

	var got map[string]string
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if got["jumped"] != "jump" || got["universe"] != "univers" {
		t.Errorf("StemAction() yaml = %v", got)
	}
}

func TestStemAction_Errors(t *testing.T) {
	if _, err := runStem(t); err == nil {
		t.Error("StemAction() with no words: error = nil, want error")
	}
	_, err := runStem(t, "--stemmer", "lancaster", "jumping")
	if err == nil || !strings.Contains(err.Error(), "unknown stemmer") {
		t.Errorf("StemAction() with bad stemmer: error = %v, want unknown stemmer", err)
	}
}
