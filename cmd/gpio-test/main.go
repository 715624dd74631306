package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fkcurrie/fds132-led-golang/internal/backend"
	"github.com/fkcurrie/fds132-led-golang/internal/config"
	"github.com/fkcurrie/fds132-led-golang/pkg/gpio"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	lineName := flag.String("line", gpio.ShiftClock.String(), "line to toggle: clock, data, strobe, row-a, row-b, row-c")
	backendName := flag.String("backend", "", "GPIO backend, overrides the config file")
	period := flag.Duration("period", 100*time.Microsecond, "toggle interval")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logrus.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if *backendName != "" {
		cfg.Hardware.Backend = *backendName
	}

	line, err := gpio.ParseLine(*lineName)
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	drv, err := backend.Open(cfg.Hardware)
	if err != nil {
		logrus.Fatalf("Failed to open %s GPIO backend: %v", cfg.Hardware.Backend, err)
	}
	defer drv.Close()

	// Set up signal handler for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pin := gpio.PinNumbers(cfg.Hardware.Pins)[line]
	logrus.WithFields(logrus.Fields{
		"line":   line,
		"gpio":   pin,
		"period": *period,
	}).Info("Toggling line, press Ctrl-C to stop")

	toggles := toggle(ctx, drv, line, gpio.Spin(*period))
	drv.Set(line, false)
	logrus.WithField("toggles", toggles).Info("Shutting down...")
}

// toggle flips line until ctx is done and returns the number of edges.
func toggle(ctx context.Context, drv gpio.Driver, line gpio.Line, wait gpio.Delay) int {
	high := false
	n := 0
	for ctx.Err() == nil {
		high = !high
		drv.Set(line, high)
		n++
		wait()
	}
	return n
}
