// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/reporeply/reporeply/metrics"
	"github.com/reporeply/reporeply/server"
	"github.com/reporeply/reporeply/version"
)

var (
	configFile  string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "config-reporeply.json", "")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
}

func main() {
	flag.Parse()

	if showVersion {
		os.Stdout.WriteString(version.Full().String() + "\n")
		return
	}

	config, err := server.GetConfig(configFile)
	if err != nil {
		mlog.Error("unable to load server config", mlog.Err(err), mlog.String("file", configFile))
		os.Exit(1)
	}
	if err = server.SetupLogging(config); err != nil {
		mlog.Error("unable to configure logging", mlog.Err(err))
		os.Exit(1)
	}

	metricsProvider := metrics.NewPrometheusProvider()
	metricsServer := metrics.NewServer(config.MetricsServerPort, true, metricsProvider.Handler())
	metricsServer.Start()
	defer metricsServer.Stop()

	mlog.Info("Loaded config", mlog.String("filename", configFile))
	s, err := server.New(config, metricsProvider)
	if err != nil {
		mlog.Error("unable to start server", mlog.Err(err))
		return
	}

	s.Start()

	defer func() {
		if err2 := s.Stop(); err2 != nil {
			mlog.Error("error while shutting down server", mlog.Err(err2))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-sig
	mlog.Info("Received shutdown signal")
}
