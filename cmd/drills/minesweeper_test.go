package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/drills/internal/board"
	"github.com/nao1215/drills/internal/config"
	"github.com/nao1215/drills/internal/log"
)

const defaultBoardOutput = "[1, 9, 2, 1]\n[2, 3, 9, 2]\n[3, 9, 4, 9]\n[9, 9, 3, 1]\n"

// writeBoard writes a board file and returns its path.
func writeBoard(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write board: %v", err)
	}
	return path
}

// TestMinesweeperCmd tests the board annotator command.
func TestMinesweeperCmd(t *testing.T) {
	t.Parallel()

	t.Run("annotates the built-in board", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(defaultBoardOutput, stdout); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("annotates a board file", func(t *testing.T) {
		t.Parallel()

		path := writeBoard(t, "board.yaml", "- [0, 0, 0]\n- [0, 1, 0]\n- [0, 0, 0]\n")
		stdout, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""), "--board", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "[1, 1, 1]\n[1, 9, 1]\n[1, 1, 1]\n"
		if diff := cmp.Diff(want, stdout); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("uses the board from the config file", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfig(t, "board:\n  - [1, 0]\n  - [0, 0]\n")
		stdout, _, err := runCLI(t, "minesweeper", "-c", cfgPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "[9, 1]\n[1, 1]\n"; stdout != want {
			t.Errorf("got %q, expected %q", stdout, want)
		}
	})

	t.Run("board flag wins over the config file", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfig(t, "board:\n  - [1, 0]\n  - [0, 0]\n")
		boardPath := writeBoard(t, "board.json", "[[0, 0]]")
		stdout, _, err := runCLI(t, "minesweeper", "-c", cfgPath, "--board", boardPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "[0, 0]\n"; stdout != want {
			t.Errorf("got %q, expected %q", stdout, want)
		}
	})

	t.Run("ragged board is invalid input", func(t *testing.T) {
		t.Parallel()

		path := writeBoard(t, "board.yaml", "- [0, 1]\n- [0]\n")
		_, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""), "--board", path)
		if !errors.Is(err, board.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("cell value other than 0 or 1 is invalid input", func(t *testing.T) {
		t.Parallel()

		path := writeBoard(t, "board.yaml", "- [0, 2]\n")
		_, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""), "--board", path)
		if !errors.Is(err, board.ErrInvalidCell) {
			t.Errorf("expected ErrInvalidCell, got %v", err)
		}
	})

	t.Run("json report", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""), "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed struct {
			Kind   string `json:"kind"`
			Report struct {
				Annotated [][]int `json:"annotated"`
				Mines     int     `json:"mines"`
			} `json:"report"`
		}
		if err := json.Unmarshal([]byte(stdout), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
		}
		if parsed.Kind != "board" {
			t.Errorf("kind = %q, expected board", parsed.Kind)
		}
		want := [][]int{{1, 9, 2, 1}, {2, 3, 9, 2}, {3, 9, 4, 9}, {9, 9, 3, 1}}
		if diff := cmp.Diff(want, parsed.Report.Annotated); diff != "" {
			t.Errorf("annotated mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("markdown report to a file", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), "reports", "board.md")
		stdout, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""), "--markdown", "-o", outPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "" {
			t.Errorf("expected nothing on stdout, got %q", stdout)
		}

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("report file not written: %v", err)
		}
		if !strings.Contains(string(content), "# Minesweeper Board") {
			t.Error("expected Markdown heading in report file")
		}
	})

	t.Run("json and markdown conflict", func(t *testing.T) {
		t.Parallel()

		_, _, err := runCLI(t, "minesweeper", "-c", writeConfig(t, ""), "--json", "--markdown")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		_, _, err := runCLI(t, "minesweeper", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("json log format", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := runCLI(t, "-v", "--log-format", "json", "minesweeper", "-c", writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(stderr), "\n")
		if len(lines) == 0 || lines[0] == "" {
			t.Fatal("expected log lines on stderr")
		}
		for _, line := range lines {
			var entry map[string]any
			if err := json.Unmarshal([]byte(line), &entry); err != nil {
				t.Errorf("log line is not JSON: %q", line)
			}
		}
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Parallel()

		_, _, err := runCLI(t, "--log-format", "xml", "minesweeper", "-c", writeConfig(t, ""))
		if !errors.Is(err, log.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("verbose logs go to stderr", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := runCLI(t, "-v", "minesweeper", "-c", writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, "annotated board") {
			t.Errorf("expected debug log on stderr, got %q", stderr)
		}
		if !strings.Contains(stdout, "4x4 board, 6 mines") {
			t.Errorf("expected verbose summary, got %q", stdout)
		}
	})
}
