package main

import (
	"fmt"
	"strings"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/infrastructure/storage"
	"dungeon-core/internal/render"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>",
	Short: "Print the remembered map from a memory snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	snap, err := storage.NewSnapshotService("").Load(args[0])
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d, depth %d, %dx%d, %d cells remembered\n",
		snap.Seed, snap.Depth, snap.Width, snap.Height, len(snap.Cells))
	for _, row := range drawMemory(snap) {
		fmt.Fprintln(out, row)
	}
	return nil
}

// drawMemory рисует запомненные клетки так, как их видит герой вне поля зрения.
func drawMemory(snap *storage.Snapshot) []string {
	l := domain.NewLevel(snap.Depth, snap.Width, snap.Height)
	mem := domain.NewMemory()
	snap.Restore(l, mem)

	rec := render.NewRecorder()
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := domain.Point{X: x, Y: y}
			if tile, ok := mem.Recall(l, p); ok {
				tile.DrawUnseen(rec, p)
			}
		}
	}

	rows := make([]string, 0, l.Height)
	for y := 0; y < l.Height; y++ {
		var sb strings.Builder
		for x := 0; x < l.Width; x++ {
			g, ok := rec.Glyph(domain.Point{X: x, Y: y})
			if !ok || !g.HasSymbol() {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(g.Symbol)
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	return rows
}
