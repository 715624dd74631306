package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/backend"
	"github.com/fkcurrie/fds132-led-golang/internal/charset"
	"github.com/fkcurrie/fds132-led-golang/internal/config"
	"github.com/fkcurrie/fds132-led-golang/internal/display"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(1)
		}
		logrus.Fatalf("Invalid options: %v", err)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Display.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	input, err := openInput(cfg.Display.Input)
	if err != nil {
		logrus.Fatalf("Failed to open input: %v", err)
	}
	defer input.Close()

	var r io.Reader = input
	if cfg.Display.Transliterate {
		r = charset.NewReader(input)
		if cfg.Display.StaticText != nil {
			t := charset.String(*cfg.Display.StaticText)
			cfg.Display.StaticText = &t
		}
	}

	drv, err := backend.Open(cfg.Hardware)
	if err != nil {
		logrus.Fatalf("Failed to open %s GPIO backend: %v", cfg.Hardware.Backend, err)
	}

	// Handle shutdown gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := display.NewSession(drv, display.Options{
		Display: cfg.Display,
		Input:   r,
	})
	err = session.Run(ctx)

	if saveErr := backend.SavePreview(drv, cfg.Hardware); saveErr != nil {
		logrus.Errorf("%v", saveErr)
	}

	// Leave the panel dark.
	display.NewScanner(drv).Refresh(display.NewTextBuffer())
	if closeErr := drv.Close(); closeErr != nil {
		logrus.Errorf("Failed to release GPIO: %v", closeErr)
	}

	switch {
	case err == nil, errors.Is(err, display.ErrInputExhausted):
		logrus.Debug("Input exhausted")
	case errors.Is(err, context.Canceled):
		logrus.Info("Shutting down...")
	default:
		logrus.Errorf("Display loop failed: %v", err)
		os.Exit(1)
	}
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
