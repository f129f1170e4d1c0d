package agentapp

import (
	"context"
	"fmt"
	"net/http"

	miniocomp "github.com/10Narratives/nimbus/internal/app/components/minio"
	natscomp "github.com/10Narratives/nimbus/internal/app/components/nats"
	clusterrepo "github.com/10Narratives/nimbus/internal/repositories/clusters"
	oprepo "github.com/10Narratives/nimbus/internal/repositories/operations"
	snaprepo "github.com/10Narratives/nimbus/internal/repositories/snapshots"
	httptr "github.com/10Narratives/nimbus/internal/transport/http"
	natscons "github.com/10Narratives/nimbus/internal/transport/nats/consumer"
	"github.com/10Narratives/nimbus/internal/workers/executor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const durableName = "nimbus-agent"

type App struct {
	cfg *Config
	log *zap.Logger

	unifiedStorage *natscomp.UnifiedStorage
	consumer       *natscons.Consumer
	metricsServer  *httptr.Component
}

func NewApp(ctx context.Context, cfg *Config, log *zap.Logger) (*App, error) {
	unifiedStorage, err := natscomp.NewUnifiedStorage(cfg.UnifiedStorage.URL)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to unified storage: %w", err)
	}
	log.Info("connection to unified storage established")

	objectStorage, err := miniocomp.NewConnection(
		cfg.ObjectStorage.Endpoint,
		cfg.ObjectStorage.User,
		cfg.ObjectStorage.Password,
		cfg.ObjectStorage.UseSSL,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to object storage: %w", err)
	}
	log.Info("connection to object storage established")

	operationRepository, err := oprepo.NewRepository(unifiedStorage.OperationMeta)
	if err != nil {
		return nil, err
	}

	clusterRepository, err := clusterrepo.NewRepository(unifiedStorage.ClusterMeta)
	if err != nil {
		return nil, err
	}

	snapshotRepository, err := snaprepo.NewRepository(ctx, objectStorage, cfg.ObjectStorage.SnapshotsBucketName)
	if err != nil {
		return nil, err
	}

	worker, err := executor.NewExecutor(clusterRepository, operationRepository, snapshotRepository, log, cfg.Work.ProvisionDelay)
	if err != nil {
		return nil, err
	}

	consumer, err := natscons.NewConsumer(unifiedStorage.WorkStream, durableName, worker.Handler(), cfg.Work.Slots)
	if err != nil {
		return nil, fmt.Errorf("create work consumer: %w", err)
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	return &App{
		cfg:            cfg,
		log:            log,
		unifiedStorage: unifiedStorage,
		consumer:       consumer,
		metricsServer:  httptr.NewComponent(cfg.Metrics.Address, metricsMux),
	}, nil
}

func (a *App) Startup(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		a.log.Debug("starting work consumer")
		defer a.log.Info("work consumer is pulling messages")

		return a.consumer.Run(ctx)
	})

	errGroup.Go(func() error {
		a.log.Debug("starting metrics server")
		defer a.log.Info("metrics server ready to accept requests")

		return a.metricsServer.Startup(ctx)
	})

	return errGroup.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		defer a.log.Info("work consumer stopped")

		return a.consumer.Stop(ctx)
	})

	errGroup.Go(func() error {
		defer a.log.Info("metrics server stopped")

		return a.metricsServer.Shutdown(ctx)
	})

	if err := errGroup.Wait(); err != nil {
		return err
	}

	a.unifiedStorage.Conn.Close()
	return nil
}
