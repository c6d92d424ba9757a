// Package main - точка входа: терминальная сессия и утилиты вокруг нее.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Turn-based dungeon crawler in the terminal",
	Long: `dungeon runs a turn-based roguelike session in the terminal.
Rendered frames can be streamed to spectators over WebSocket.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)
}
