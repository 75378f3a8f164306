// Command hexmove runs an interactive hex-grid movement session in the terminal.
// Select a unit by clicking its hex, then click a highlighted hex to move it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/talgya/hexmove/internal/movement"
	"github.com/talgya/hexmove/internal/shell"
	"github.com/talgya/hexmove/internal/tactics"
	"github.com/talgya/hexmove/internal/world"
)

func main() {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they do not interleave with the board on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// ── Board ─────────────────────────────────────────────────────────
	board := world.Generate(cfg.Gen)
	slog.Info("board generated", "board", board, "seed", cfg.Gen.Seed)

	// ── Units ─────────────────────────────────────────────────────────
	roster := shell.NewRoster()
	for _, sp := range world.PlaceUnits(board, cfg.Units, cfg.Gen.Seed) {
		u, err := roster.Spawn(sp.Name, sp.Coord)
		if err != nil {
			slog.Error("spawn failed", "error", err)
			os.Exit(1)
		}
		slog.Info("unit placed", "unit", u.Name, "hex", u.Position, "id", u.ID)
	}
	if roster.Len() == 0 {
		slog.Error("no open hex for any unit; lower HEXMOVE_ROCK_LEVEL or raise HEXMOVE_RADIUS")
		os.Exit(1)
	}

	// ── Session ───────────────────────────────────────────────────────
	ctrl := tactics.NewController(cfg.Session, roster)
	session := shell.NewSession(ctrl, board, roster)
	session.Renderer.Plain = !term.IsTerminal(int(os.Stdout.Fd()))

	slog.Info("session ready",
		"hex_size", cfg.Session.HexSize,
		"move_range", cfg.Session.MaxMoveRange,
		"max_moves", movement.DiskSize(cfg.Session.MaxMoveRange),
		"units", roster.Len(),
	)

	fmt.Println("type help for commands")
	if err := session.Run(os.Stdin, os.Stdout); err != nil {
		slog.Error("session failed", "error", err)
		os.Exit(1)
	}
}
