package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	clusterrepo "github.com/10Narratives/nimbus/internal/repositories/clusters"
	natscons "github.com/10Narratives/nimbus/internal/transport/nats/consumer"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	workHandledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nimbus",
		Subsystem: "executor",
		Name:      "work_handled_total",
		Help:      "Work messages handled, by verb and outcome",
	}, []string{"verb", "outcome"})

	workInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nimbus",
		Subsystem: "executor",
		Name:      "work_in_flight",
		Help:      "Work messages currently being executed",
	})
)

type ClusterStore interface {
	GetCluster(ctx context.Context, name clusterdomain.ClusterName) (*clusterdomain.Cluster, error)
	UpdateClusterState(ctx context.Context, name clusterdomain.ClusterName, from, to clusterdomain.ClusterState) (*clusterdomain.Cluster, error)
}

type OperationStore interface {
	opdomain.OperationCompleter
}

type SnapshotStore interface {
	PutSnapshot(ctx context.Context, cluster *clusterdomain.Cluster) (string, error)
}

// Executor performs the cluster work enqueued by the gateway and settles the
// matching operation. Every message ends in exactly one of: operation
// completed (ack), operation already completed by someone else (ack), or an
// infrastructure error (nak, redelivered later).
type Executor struct {
	clusterStore   ClusterStore
	operationStore OperationStore
	snapshotStore  SnapshotStore
	log            *zap.Logger

	provisionDelay time.Duration
}

func NewExecutor(clusterStore ClusterStore, operationStore OperationStore, snapshotStore SnapshotStore, log *zap.Logger, provisionDelay time.Duration) (*Executor, error) {
	if clusterStore == nil {
		return nil, errors.New("cluster store is required")
	}
	if operationStore == nil {
		return nil, errors.New("operation store is required")
	}
	if snapshotStore == nil {
		return nil, errors.New("snapshot store is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Executor{
		clusterStore:   clusterStore,
		operationStore: operationStore,
		snapshotStore:  snapshotStore,
		log:            log,
		provisionDelay: provisionDelay,
	}, nil
}

// Handler adapts the executor to the consumer's message callback.
func (e *Executor) Handler() natscons.Handler {
	return func(ctx context.Context, msg jetstream.Msg) error {
		workInFlight.Inc()
		defer workInFlight.Dec()

		return e.handle(ctx, msg.Subject(), msg.Data())
	}
}

func (e *Executor) handle(ctx context.Context, subject string, data []byte) error {
	switch subject {
	case clusterrepo.SubjectProvision:
		var msg clusterdomain.ProvisionClusterMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			e.log.Error("malformed provision message dropped", zap.Error(err))
			return nil
		}
		return e.observe("create", e.provision(ctx, &msg))

	case clusterrepo.SubjectTeardown:
		var msg clusterdomain.TeardownClusterMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			e.log.Error("malformed teardown message dropped", zap.Error(err))
			return nil
		}
		return e.observe("delete", e.teardown(ctx, &msg))

	case clusterrepo.SubjectExport:
		var msg clusterdomain.ExportClusterMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			e.log.Error("malformed export message dropped", zap.Error(err))
			return nil
		}
		return e.observe("export", e.export(ctx, &msg))

	default:
		e.log.Warn("unknown work subject dropped", zap.String("subject", subject))
		return nil
	}
}

func (e *Executor) observe(verb string, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = "retry"
	}
	workHandledTotal.WithLabelValues(verb, outcome).Inc()
	return err
}

func (e *Executor) provision(ctx context.Context, msg *clusterdomain.ProvisionClusterMessage) error {
	if err := e.simulateWork(ctx); err != nil {
		return err
	}

	cluster, err := e.clusterStore.UpdateClusterState(ctx, msg.ClusterName,
		clusterdomain.ClusterStateProvisioning, clusterdomain.ClusterStateRunning)
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}

	payload, err := cluster.ToAny()
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}

	return e.succeed(ctx, msg.OperationName, msg.ClusterName, payload)
}

func (e *Executor) teardown(ctx context.Context, msg *clusterdomain.TeardownClusterMessage) error {
	if err := e.simulateWork(ctx); err != nil {
		return err
	}

	cluster, err := e.clusterStore.UpdateClusterState(ctx, msg.ClusterName,
		clusterdomain.ClusterStateDeleting, clusterdomain.ClusterStateDeleted)
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}

	payload, err := cluster.ToAny()
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}

	return e.succeed(ctx, msg.OperationName, msg.ClusterName, payload)
}

func (e *Executor) export(ctx context.Context, msg *clusterdomain.ExportClusterMessage) error {
	cluster, err := e.clusterStore.GetCluster(ctx, msg.ClusterName)
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}
	if cluster.State != clusterdomain.ClusterStateRunning {
		return e.fail(ctx, msg.OperationName, msg.ClusterName,
			fmt.Errorf("%w: %s is %s", clusterdomain.ErrClusterNotReady, cluster.Name, cluster.State))
	}

	key, err := e.snapshotStore.PutSnapshot(ctx, cluster)
	if err != nil {
		// object storage hiccups are worth a redelivery
		return fmt.Errorf("upload snapshot of %s: %w", msg.ClusterName, err)
	}

	result, err := structpb.NewStruct(map[string]any{"object_key": key})
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}
	payload, err := anypb.New(result)
	if err != nil {
		return e.fail(ctx, msg.OperationName, msg.ClusterName, err)
	}

	return e.succeed(ctx, msg.OperationName, msg.ClusterName, payload)
}

func (e *Executor) succeed(ctx context.Context, operationName string, cluster clusterdomain.ClusterName, payload *anypb.Any) error {
	name, err := opdomain.ParseOperationName(operationName)
	if err != nil {
		e.log.Error("work message names an invalid operation, dropped",
			zap.String("operation", operationName), zap.Error(err))
		return nil
	}

	_, err = e.operationStore.CompleteOperation(ctx, &opdomain.CompleteOperationArgs{
		Name:     name,
		Response: payload,
	})
	return e.settleResult(operationName, cluster, err)
}

// fail settles the operation with the work error. The message is acked: the
// failure now belongs to the operation record, not to the queue.
func (e *Executor) fail(ctx context.Context, operationName string, cluster clusterdomain.ClusterName, workErr error) error {
	e.log.Warn("cluster work failed",
		zap.String("cluster", cluster.String()),
		zap.String("operation", operationName),
		zap.Error(workErr))

	name, err := opdomain.ParseOperationName(operationName)
	if err != nil {
		return nil
	}

	_, err = e.operationStore.CompleteOperation(ctx, &opdomain.CompleteOperationArgs{
		Name:  name,
		Error: status.New(codes.Internal, workErr.Error()).Proto(),
	})
	return e.settleResult(operationName, cluster, err)
}

func (e *Executor) settleResult(operationName string, cluster clusterdomain.ClusterName, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, opdomain.ErrOperationCompleted):
		// canceled by the user or settled by a competing worker
		e.log.Info("operation was already settled",
			zap.String("operation", operationName),
			zap.String("cluster", cluster.String()))
		return nil
	case errors.Is(err, opdomain.ErrOperationNotFound):
		e.log.Warn("operation record disappeared, dropping work",
			zap.String("operation", operationName))
		return nil
	default:
		return fmt.Errorf("settle operation %s: %w", operationName, err)
	}
}

func (e *Executor) simulateWork(ctx context.Context) error {
	if e.provisionDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(e.provisionDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
