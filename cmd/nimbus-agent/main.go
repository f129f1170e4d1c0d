package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	agentapp "github.com/10Narratives/nimbus/internal/app/agent"
	configutils "github.com/10Narratives/nimbus/pkg/config"
	errorutils "github.com/10Narratives/nimbus/pkg/errors"
	logutils "github.com/10Narratives/nimbus/pkg/logging"
)

func main() {
	path := flag.String("config", "", "path to configuration file")
	env := flag.String("env", "", "launch environment")

	flag.Parse()

	cfg := errorutils.Must(configutils.Read[agentapp.Config](*path))
	log := errorutils.Must(logutils.NewLogger(*env))

	startupContext, startupCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	app := errorutils.Must(agentapp.NewApp(startupContext, cfg, log))

	log.Info("starting nimbus-agent application")
	errorutils.Try(app.Startup(startupContext))

	<-startupContext.Done()
	startupCancel()

	log.Info("stopping nimbus-agent application")
	shutdownContext, shutdownCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Shutdown(shutdownContext))

	shutdownCancel()
}
