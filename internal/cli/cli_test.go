package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docstyle/internal/domain"
)

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// runCLI executes the root command with fresh flag state.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	analyzeOpts = analysisFlags{}
	statsOpts = analysisFlags{}
	matrixOpts = analysisFlags{}
	cfgFile, rootDir, logLevel = "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.txt":    "the Cat sat on the mat",
		"b.txt":    "the cat ate a rat",
		"stop.txt": "the on a",
	})

	out, err := runCLI(t, "analyze", "a.txt", "b.txt", "--dir", dir, "--max-sep", "2", "--stop-words", "stop.txt", "--format", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Evaluating document: a.txt",
		"1. Average word length: 3.00",
		"2. Ratio of distinct words to total words: 1.000",
		"Evaluating document: b.txt",
		"Summary comparison",
		"1. b.txt on average uses longer words than a.txt",
		"2. Overall word use similarity: 0.200",
		"4. Word pair similarity:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestAnalyzeCommand_JSONOutputFile(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.txt":    "a bb ccc",
		"b.txt":    "a bb ddd",
		"none.txt": "zzz",
	})
	outPath := filepath.Join(dir, "report.json")

	if _, err := runCLI(t, "analyze", "a.txt", "b.txt", "--dir", dir, "--max-sep", "2", "--stop-words", "none.txt", "--format", "json", "-o", outPath, "--log-level", "error"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var result domain.Analysis
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result.Comparison.Overall != 0.5 {
		t.Errorf("expected overall 0.5, got %v", result.Comparison.Overall)
	}
	if len(result.Documents) != 2 {
		t.Errorf("expected 2 documents, got %d", len(result.Documents))
	}
}

func TestAnalyzeCommand_InvalidMaxSep(t *testing.T) {
	dir := writeDocs(t, map[string]string{"a.txt": "cat sat", "b.txt": "dog sat"})

	_, err := runCLI(t, "analyze", "a.txt", "b.txt", "--dir", dir, "--max-sep", "0")
	if !errors.Is(err, domain.ErrInvalidSeparation) {
		t.Errorf("expected ErrInvalidSeparation, got %v", err)
	}

	if _, err := runCLI(t, "analyze", "a.txt", "b.txt", "--dir", dir, "--max-sep", "two"); err == nil {
		t.Error("expected error for non-integer max-sep")
	}
}

func TestStatsCommand_EmptyDocument(t *testing.T) {
	dir := writeDocs(t, map[string]string{"empty.txt": "123 ... !!!"})

	_, err := runCLI(t, "stats", "empty.txt", "--dir", dir, "--max-sep", "2")
	if !errors.Is(err, domain.ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestStatsCommand_Table(t *testing.T) {
	dir := writeDocs(t, map[string]string{"doc.txt": "quick brown fox jumps"})

	out, err := runCLI(t, "stats", "doc.txt", "--dir", dir, "--max-sep", "1", "--format", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Average word length") || !strings.Contains(out, "4.50") {
		t.Errorf("unexpected table output:\n%s", out)
	}
}

func TestMatrixCommand(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.txt": "alpha beta gamma",
		"b.txt": "alpha beta delta",
		"c.txt": "omega sigma",
	})

	out, err := runCLI(t, "matrix", dir, "--dir", dir, "--max-sep", "2", "--format", "json", "--no-progress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m domain.MatrixReport
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(m.Documents) != 3 || len(m.Cells) != 3 {
		t.Errorf("expected 3 documents and 3 cells, got %d / %d", len(m.Documents), len(m.Cells))
	}
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "config", "show", "--dir", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "max_sep: 2") {
		t.Errorf("expected default max_sep in output:\n%s", out)
	}
}
