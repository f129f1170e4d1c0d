package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	gatewayapp "github.com/10Narratives/nimbus/internal/app/gateway"
	configutils "github.com/10Narratives/nimbus/pkg/config"
	errorutils "github.com/10Narratives/nimbus/pkg/errors"
	logutils "github.com/10Narratives/nimbus/pkg/logging"
)

func main() {
	path := flag.String("config", "", "path to configuration file")
	env := flag.String("env", "", "launch environment")

	flag.Parse()

	cfg := errorutils.Must(configutils.Read[gatewayapp.Config](*path))
	log := errorutils.Must(logutils.NewLogger(*env))

	app := errorutils.Must(gatewayapp.NewApp(cfg, log))

	log.Info("starting nimbus-gateway application")
	startupContext, startupCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Startup(startupContext))

	<-startupContext.Done()
	startupCancel()

	log.Info("stopping nimbus-gateway application")
	shutdownContext, shutdownCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Shutdown(shutdownContext))

	shutdownCancel()
}
