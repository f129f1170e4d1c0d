package gatewayapp

import (
	"context"
	"fmt"

	natscomp "github.com/10Narratives/nimbus/internal/app/components/nats"
	clusterrepo "github.com/10Narratives/nimbus/internal/repositories/clusters"
	oprepo "github.com/10Narratives/nimbus/internal/repositories/operations"
	clustersrv "github.com/10Narratives/nimbus/internal/services/clusters"
	opsrv "github.com/10Narratives/nimbus/internal/services/operations"
	grpctr "github.com/10Narratives/nimbus/internal/transport/grpc"
	healthapi "github.com/10Narratives/nimbus/internal/transport/grpc/api/health"
	opapi "github.com/10Narratives/nimbus/internal/transport/grpc/api/operations"
	reflectapi "github.com/10Narratives/nimbus/internal/transport/grpc/api/reflect"
	"github.com/10Narratives/nimbus/internal/transport/grpc/interceptors/logging"
	"github.com/10Narratives/nimbus/internal/transport/grpc/interceptors/recovery"
	httptr "github.com/10Narratives/nimbus/internal/transport/http"
	clusterapi "github.com/10Narratives/nimbus/internal/transport/http/api/clusters"
	"github.com/10Narratives/nimbus/internal/transport/http/middleware"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type App struct {
	cfg *Config
	log *zap.Logger

	unifiedStorage *natscomp.UnifiedStorage
	grpcServer     *grpctr.Component
	httpServer     *httptr.Component
}

func NewApp(cfg *Config, log *zap.Logger) (*App, error) {
	unifiedStorage, err := natscomp.NewUnifiedStorage(cfg.UnifiedStorage.URL)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to unified storage: %w", err)
	}
	log.Info("connection to unified storage established")

	operationRepository, err := oprepo.NewRepository(unifiedStorage.OperationMeta)
	if err != nil {
		return nil, err
	}

	clusterRepository, err := clusterrepo.NewRepository(unifiedStorage.ClusterMeta)
	if err != nil {
		return nil, err
	}

	workPublisher := clusterrepo.NewPublisher(unifiedStorage.JS)

	operationService, err := opsrv.NewService(operationRepository)
	if err != nil {
		return nil, err
	}

	clusterService, err := clustersrv.NewService(clusterRepository, operationService, workPublisher)
	if err != nil {
		return nil, err
	}

	grpcServer := grpctr.NewComponent(cfg.Server.Grpc.Address,
		grpctr.WithServerOptions(
			grpc.ChainUnaryInterceptor(
				recovery.NewUnaryServerInterceptor(),
				logging.NewUnaryServerInterceptor(log),
			),
			grpc.ChainStreamInterceptor(
				recovery.NewStreamServerInterceptor(),
				logging.NewStreamServerInterceptor(log),
			),
		),
		grpctr.WithServiceRegistration(
			healthapi.NewRegistration(),
			reflectapi.NewRegistration(),
			opapi.NewRegistration(operationService),
		),
	)

	restHandler, err := clusterapi.NewHandler(clusterService, operationService)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.Use(middleware.Recovery(log), middleware.Logging(log))
	restHandler.Register(router)

	return &App{
		cfg:            cfg,
		log:            log,
		unifiedStorage: unifiedStorage,
		grpcServer:     grpcServer,
		httpServer:     httptr.NewComponent(cfg.Server.HTTP.Address, router),
	}, nil
}

func (a *App) Startup(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		a.log.Debug("starting gRPC server")
		defer a.log.Info("gRPC server ready to accept requests")

		return a.grpcServer.Startup(ctx)
	})

	errGroup.Go(func() error {
		a.log.Debug("starting HTTP server")
		defer a.log.Info("HTTP server ready to accept requests")

		return a.httpServer.Startup(ctx)
	})

	return errGroup.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		a.log.Debug("stopping gRPC server")
		defer a.log.Info("gRPC server stopped")

		return a.grpcServer.Shutdown(ctx)
	})

	errGroup.Go(func() error {
		a.log.Debug("stopping HTTP server")
		defer a.log.Info("HTTP server stopped")

		return a.httpServer.Shutdown(ctx)
	})

	errGroup.Go(func() error {
		a.log.Debug("closing connection to unified storage")
		defer a.log.Info("connection to unified storage closed")

		a.unifiedStorage.Conn.Close()
		return nil
	})

	return errGroup.Wait()
}
