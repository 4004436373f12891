package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/drills/internal/board"
	"github.com/nao1215/drills/internal/model"
	"github.com/nao1215/drills/internal/report"
)

// NewMinesweeperCmd creates the minesweeper command.
func NewMinesweeperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "minesweeper",
		Aliases: []string{"mines"},
		Short:   "Annotate a Minesweeper board with adjacent mine counts",
		Long: `Minesweeper reads a board of 0 (empty) and 1 (mine) cells, marks every mine
as 9 and replaces every other cell with the number of mines among its up to
eight neighbours. The annotated board is printed one row per line.

The board is taken from --board, then from the "board" key of the
configuration file, then from the built-in example board.

Examples:
  # Annotate the built-in board
  drills minesweeper

  # Annotate a board from a YAML or JSON file
  drills minesweeper --board board.yaml

  # Write a Markdown report
  drills minesweeper --markdown -o reports/board.md

Board file example:
  - [0, 1, 0, 0]
  - [0, 0, 1, 0]
  - [0, 1, 0, 1]
  - [1, 1, 0, 0]`,
		Args: cobra.NoArgs,
		RunE: runMinesweeperCmd,
	}

	cmd.Flags().StringP("board", "b", "",
		"Board file (YAML or JSON list of rows)")
	addOutputFlags(cmd)

	return cmd
}

// runMinesweeperCmd executes the minesweeper command.
func runMinesweeperCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.BoardFile, err = cmd.Flags().GetString("board")
	if err != nil {
		return err
	}

	if err := cfg.ValidateOutput(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	input := board.DefaultBoard
	switch {
	case cfg.BoardFile != "":
		input, err = board.LoadFile(cfg.BoardFile)
		if err != nil {
			return err
		}
		logger.Debug("loaded board file", "path", cfg.BoardFile)
	case cfg.Board != nil:
		input = *cfg.Board
		logger.Debug("using board from config file", "path", cfg.ConfigFilePath)
	default:
		logger.Debug("using built-in board")
	}

	sanitized, err := board.Sanitize(input)
	if err != nil {
		return err
	}
	annotated := board.Annotate(sanitized)

	logger.Debug("annotated board",
		"rows", annotated.Rows(),
		"cols", annotated.Cols(),
		"mines", annotated.MineCount(),
	)

	boardReport := model.NewBoardReport(input, sanitized, annotated)
	return outputReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteBoard(boardReport)
		return err
	})
}
