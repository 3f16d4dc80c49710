// Command walksim simulates the device side of a walk: it runs the permission
// flow against a scripted platform, then replays recorded GPS fixes through
// the distance accumulator.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/shenikar/step_challenge_backend/internal/config"
	"github.com/shenikar/step_challenge_backend/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadBaseConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	fixesPath := flag.String("fixes", "-", "JSON lines file of {latitude, longitude, timestamp}; - reads stdin")
	userID := flag.String("user", "demo-user", "user the walk belongs to")
	activity := flag.String("activity", "grant", "answer to the activity recognition prompt: grant|deny")
	location := flag.String("location", "grant", "answer to the location prompt: grant|deny|hang")
	delay := flag.Duration("delay", cfg.PermissionDelay, "pause between the activity and location prompts")
	timeout := flag.Duration("timeout", cfg.PermissionTimeout, "location prompt timeout")
	flag.Parse()

	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, options{
		fixesPath: *fixesPath,
		userID:    *userID,
		activity:  *activity,
		location:  *location,
		delay:     *delay,
		timeout:   *timeout,
	}, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("Walk simulation failed")
		os.Exit(1)
	}
}
