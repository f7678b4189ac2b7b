package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/batchcorp/nativebus/frame"
	"github.com/batchcorp/nativebus/options"
	"github.com/batchcorp/nativebus/prometheus"
	"github.com/batchcorp/nativebus/relay"
	"github.com/batchcorp/nativebus/util"
)

func main() {
	// stdout carries frames; nothing else may be written to it
	util.ConfigureLogging(false, os.Stderr)

	_, opts, err := options.New(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Unable to handle CLI input: %s", err)
	}

	util.ConfigureLogging(opts.Debug, os.Stderr)

	prometheus.InitPrometheusMetrics()

	if opts.Stats {
		prometheus.Start(opts.StatsInterval)
	}

	frameCfg := opts.FrameConfig()
	frameCfg.Reader = os.Stdin
	frameCfg.Writer = os.Stdout

	transport, err := frame.New(frameCfg)
	if err != nil {
		logrus.Fatalf("Unable to create frame transport: %s", err)
	}

	r, err := relay.New(&relay.Config{
		Bus:       opts.BusConfig(),
		Transport: transport,
	})
	if err != nil {
		logrus.Fatalf("Unable to create relay: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	status, err := r.Run(ctx)

	stop()

	if err != nil {
		logrus.Errorf("Relay exited (%s): %s", status, err)
	} else {
		logrus.Infof("Relay exited (%s)", status)
	}

	// os.Exit skips deferred calls
	prometheus.Stop()

	os.Exit(status.ExitCode())
}
