package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shenikar/step_challenge_backend/internal/cache"
	"github.com/shenikar/step_challenge_backend/internal/config"
	"github.com/shenikar/step_challenge_backend/internal/permission"
	"github.com/shenikar/step_challenge_backend/internal/tracking"
	"github.com/sirupsen/logrus"
)

var errPermissionsNotGranted = errors.New("activity and location permissions are required")

type options struct {
	fixesPath string
	userID    string
	activity  string
	location  string
	delay     time.Duration
	timeout   time.Duration
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger, opts options, stdin io.Reader, stdout io.Writer) error {
	orch := permission.NewOrchestrator(
		simSensor{grant: opts.activity == "grant"},
		simLocation{mode: opts.location},
		log,
		permission.WithDelay(opts.delay),
		permission.WithRequestTimeout(opts.timeout),
	)

	states, cancel := orch.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range states {
			log.WithFields(logrus.Fields{"activity": s.Activity, "location": s.Location}).Info("Permission state changed")
		}
	}()

	granted, err := orch.RequestAll(ctx)
	cancel()
	<-done
	if err != nil {
		return fmt.Errorf("permission flow: %w", err)
	}
	if !granted {
		return errPermissionsNotGranted
	}

	in := stdin
	if opts.fixesPath != "-" {
		f, err := os.Open(opts.fixesPath)
		if err != nil {
			return fmt.Errorf("open fixes: %w", err)
		}
		defer f.Close()
		in = f
	}

	c := cache.New(cache.NewMemoryStore(), cfg.CachePrefix, log, cache.WithTTL(cfg.CacheTTL))
	defer c.Clear(context.Background(), opts.userID)

	summary, err := replay(ctx, in, tracking.NewAccumulator(cfg.MinMovementKm()), c, opts.userID, log)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
