package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/loop/client"
	lconfig "github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
	"github.com/tomz197/pong/internal/tui"
	"golang.org/x/term"
)

func main() {
	logger, closeLog, err := config.NewTerminalLogger("pong")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sound := audio.NewSoundManager()
	if config.GetEnvBool("PONG_SOUND", true) {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "err", err)
		}
	}
	defer sound.Cleanup()

	rate := config.GetEnvFloat("PONG_PHYSICS_HZ", lconfig.PhysicsRate)
	fps := config.GetEnvInt("PONG_FPS", lconfig.ClientTargetFPS)
	frontend := config.GetEnv("PONG_FRONTEND", "tcell")
	logger.Info("starting", "frontend", frontend, "physics_hz", rate, "fps", fps)

	switch frontend {
	case "tcell":
		err = runTcell(ctx, logger, rate, fps, sound.Handle)
	case "ansi":
		err = runANSI(ctx, logger, rate, fps, sound.Handle)
	default:
		err = fmt.Errorf("unknown PONG_FRONTEND %q (want tcell or ansi)", frontend)
	}
	if err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func runTcell(ctx context.Context, logger *log.Logger, rate float64, fps int, onEvent func(game.Event)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	app := tui.New(screen, tui.Options{
		Logger:      logger,
		PhysicsRate: rate,
		FPS:         fps,
		OnEvent:     onEvent,
	})
	return app.Run(ctx)
}

func runANSI(ctx context.Context, logger *log.Logger, rate float64, fps int, onEvent func(game.Event)) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// A local hub with a single session keeps the client identical to the SSH one.
	hub := server.NewServer()
	hubCtx, cancelHub := context.WithCancel(ctx)
	defer cancelHub()
	go hub.Run(hubCtx)

	c := client.NewClient(hub, os.Stdin, os.Stdout, client.ClientOptions{
		Username:    config.GetEnv("USER", "player"),
		Logger:      logger,
		PhysicsRate: rate,
		FPS:         fps,
		OnEvent:     onEvent,
	})
	return c.Run(ctx)
}
