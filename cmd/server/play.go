package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dungeon-core/internal/engine"
	"dungeon-core/internal/input"
	"dungeon-core/internal/network"
	"dungeon-core/internal/server"
	"dungeon-core/internal/version"
	"dungeon-core/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	seed       int64
	listenAddr string
	remote     bool
	saveDir    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session in the terminal",
	Long: `Start a game session in the terminal.
Settings come from DUNGEON_* environment variables; flags override them.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&seed, "seed", 0, "world seed (0 keeps DUNGEON_SEED or picks a random one)")
	playCmd.Flags().StringVar(&listenAddr, "listen", "", "spectator address, e.g. :8080")
	playCmd.Flags().BoolVar(&remote, "remote-input", false, "let spectators send commands")
	playCmd.Flags().StringVar(&saveDir, "save-dir", "", "directory for map memory snapshots")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := engine.LoadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") && seed != 0 {
		cfg.Seed = seed
	}
	if flags.Changed("listen") {
		cfg.ListenAddr = listenAddr
	}
	if flags.Changed("remote-input") {
		cfg.RemoteInput = remote
	}
	if flags.Changed("save-dir") {
		cfg.SaveDir = saveDir
	}

	// Терминал занят картой: логи уходят в файл
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.InitWithOutput(cfg.LogLevel, cfg.LogFormat, logFile)
	logger.Log.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := input.NewQueue(cfg.QueueSize)
	game, err := engine.NewGame(cfg, queue)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	var hub *network.Broadcaster
	if cfg.ListenAddr != "" {
		hub = network.NewBroadcaster()
		srv := server.New(hub, game, cfg.ListenAddr)
		if cfg.RemoteInput {
			srv.WithInput(queue)
		}
		go func() {
			if err := srv.Run(); err != nil {
				logger.Log.WithError(err).Error("Spectator server stopped")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Log.WithError(err).Warn("Spectator server shutdown failed")
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := game.Run(ctx, screen, hub); err != nil {
		return err
	}

	s := game.Status()
	logger.Log.WithFields(logrus.Fields{
		"depth": s.Depth,
		"turns": s.Turn,
		"dead":  s.Dead,
	}).Info("Session finished")
	return nil
}
