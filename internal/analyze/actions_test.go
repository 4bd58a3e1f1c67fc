package analyze

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/word-parser/pkg/manifest"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &cli.App{
		Name:      "word-parser",
		Writer:    &out,
		ErrWriter: &errOut,
		Flags:     Flags(),
		Action:    AnalyzeAction,
	}
	err := app.Run(append([]string{"word-parser"}, args...))
	return out.String(), err
}

func TestAnalyzeAction_Table(t *testing.T) {
	input, rules := setupInputs(t)

	out, err := runApp(t, "-i", input, "-r", rules, "-n", "3", "--quiet")
	if err != nil {
		t.Fatalf("AnalyzeAction() error = %v", err)
	}

	want := "" +
		"| Word         | Occurrences |\n" +
		"|--------------|-------------|\n" +
		"| hi           |           1 |\n" +
		"| in           |           1 |\n" +
		"| make         |           1 |\n"
	if out != want {
		t.Errorf("AnalyzeAction() output =\n%s\nwant\n%s", out, want)
	}
}

func TestAnalyzeAction_GenericSortJSON(t *testing.T) {
	input, rules := setupInputs(t)

	out, err := runApp(t, "-i", input, "-r", rules, "-c", "--format", "json", "-q")
	if err != nil {
		t.Fatalf("AnalyzeAction() error = %v", err)
	}

	var summary manifest.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if summary.Strategy != "sort" {
		t.Errorf("Strategy = %q, want sort", summary.Strategy)
	}
	if len(summary.TopWords) != 12 {
		t.Errorf("len(TopWords) = %d, want 12", len(summary.TopWords))
	}
}

func TestAnalyzeAction_OutputFile(t *testing.T) {
	input, rules := setupInputs(t)
	reportPath := filepath.Join(t.TempDir(), "out", "report.yaml")

	out, err := runApp(t, "-i", input, "-r", rules, "-f", "yaml", "-o", reportPath, "-q")
	if err != nil {
		t.Fatalf("AnalyzeAction() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing when --output is set", out)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var summary manifest.Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}
	if summary.DistinctWords != 12 {
		t.Errorf("DistinctWords = %d, want 12", summary.DistinctWords)
	}
}

func TestAnalyzeAction_ConfigFile(t *testing.T) {
	input, rules := setupInputs(t)
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", strings.Join([]string{
		"input_files:",
		"  - " + input,
		"rules_file: " + rules,
		"number_of_results: 2",
		"strategy: sort",
		"format: json",
	}, "\n")+"\n")

	// -n on the command line wins over the file.
	out, err := runApp(t, "--config", configPath, "-n", "4", "-q")
	if err != nil {
		t.Fatalf("AnalyzeAction() error = %v", err)
	}

	var summary manifest.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if summary.Requested != 4 || len(summary.TopWords) != 4 {
		t.Errorf("Requested, len(TopWords) = %d, %d, want 4, 4", summary.Requested, len(summary.TopWords))
	}
	if summary.Strategy != "sort" {
		t.Errorf("Strategy = %q, want sort from config file", summary.Strategy)
	}
}

func TestAnalyzeAction_PositionalInput(t *testing.T) {
	input, rules := setupInputs(t)

	out, err := runApp(t, "-r", rules, "-n", "1", "-q", input)
	if err != nil {
		t.Fatalf("AnalyzeAction() error = %v", err)
	}
	if !strings.Contains(out, "| hi           |           1 |") {
		t.Errorf("AnalyzeAction() output =\n%s\nwant hi row", out)
	}
}

func TestAnalyzeAction_Errors(t *testing.T) {
	input, rules := setupInputs(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"-r", rules}, "no input files"},
		{"missing input", []string{"-i", filepath.Join(t.TempDir(), "nope.txt")}, "failed to read input"},
		{"missing rules", []string{"-i", input, "-r", filepath.Join(t.TempDir(), "nope.txt")}, "failed to load stop words"},
		{"bad format", []string{"-i", input, "-f", "xml"}, "unknown output format"},
		{"bad config", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, append(tt.args, "-q")...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("AnalyzeAction() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
