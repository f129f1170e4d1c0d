package clustersrv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	"github.com/google/uuid"
)

const maxNodeCount = 128

//go:generate go tool mockery
type ClusterRepository interface {
	CreateCluster(ctx context.Context, cluster *clusterdomain.Cluster) error
	GetCluster(ctx context.Context, name clusterdomain.ClusterName) (*clusterdomain.Cluster, error)
	ListClusters(ctx context.Context, pageSize int32, pageToken string) ([]*clusterdomain.Cluster, string, error)
	UpdateClusterState(ctx context.Context, name clusterdomain.ClusterName, from, to clusterdomain.ClusterState) (*clusterdomain.Cluster, error)
}

type OperationStore interface {
	opdomain.OperationCreator
}

type WorkPublisher interface {
	PublishProvision(ctx context.Context, msg *clusterdomain.ProvisionClusterMessage) error
	PublishTeardown(ctx context.Context, msg *clusterdomain.TeardownClusterMessage) error
	PublishExport(ctx context.Context, msg *clusterdomain.ExportClusterMessage) error
}

// Service owns the cluster lifecycle. Every mutation records an operation,
// enqueues the work for the agent and returns the not-yet-done operation; the
// caller chooses whether to wait on it.
type Service struct {
	clusterRepository ClusterRepository
	operationStore    OperationStore
	workPublisher     WorkPublisher
}

func NewService(clusterRepository ClusterRepository, operationStore OperationStore, workPublisher WorkPublisher) (*Service, error) {
	if clusterRepository == nil {
		return nil, errors.New("cluster repository is required")
	}
	if operationStore == nil {
		return nil, errors.New("operation store is required")
	}
	if workPublisher == nil {
		return nil, errors.New("work publisher is required")
	}

	return &Service{
		clusterRepository: clusterRepository,
		operationStore:    operationStore,
		workPublisher:     workPublisher,
	}, nil
}

func (s *Service) CreateCluster(ctx context.Context, args *clusterdomain.CreateClusterArgs) (*clusterdomain.CreateClusterResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: args are required", clusterdomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.DisplayName) == "" {
		return nil, fmt.Errorf("%w: display name is required", clusterdomain.ErrInvalidArgument)
	}
	if args.NodeCount < 1 || args.NodeCount > maxNodeCount {
		return nil, fmt.Errorf("%w: node count must be between 1 and %d", clusterdomain.ErrInvalidArgument, maxNodeCount)
	}

	now := time.Now().UTC()
	cluster := &clusterdomain.Cluster{
		Name:        clusterdomain.NameFromID(uuid.NewString()),
		DisplayName: args.DisplayName,
		NodeCount:   args.NodeCount,
		State:       clusterdomain.ClusterStateProvisioning,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.clusterRepository.CreateCluster(ctx, cluster); err != nil {
		return nil, err
	}

	op, err := s.recordOperation(ctx, cluster.Name, "create")
	if err != nil {
		return nil, err
	}

	err = s.workPublisher.PublishProvision(ctx, &clusterdomain.ProvisionClusterMessage{
		ClusterName:   cluster.Name,
		OperationName: op.Operation.GetName(),
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue provisioning of %s: %w", cluster.Name, err)
	}

	return &clusterdomain.CreateClusterResult{
		Cluster:   cluster,
		Operation: op.Operation,
	}, nil
}

func (s *Service) GetCluster(ctx context.Context, args *clusterdomain.GetClusterArgs) (*clusterdomain.GetClusterResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: cluster name is required", clusterdomain.ErrInvalidArgument)
	}

	cluster, err := s.clusterRepository.GetCluster(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &clusterdomain.GetClusterResult{Cluster: cluster}, nil
}

func (s *Service) ListClusters(ctx context.Context, args *clusterdomain.ListClustersArgs) (*clusterdomain.ListClustersResult, error) {
	if args == nil {
		args = &clusterdomain.ListClustersArgs{}
	}

	if args.PageSize < 1 {
		args.PageSize = 50
	}
	args.PageSize = min(args.PageSize, 1000)

	clusters, nextToken, err := s.clusterRepository.ListClusters(ctx, args.PageSize, args.PageToken)
	if err != nil {
		return nil, err
	}

	return &clusterdomain.ListClustersResult{
		Clusters:      clusters,
		NextPageToken: nextToken,
	}, nil
}

func (s *Service) DeleteCluster(ctx context.Context, args *clusterdomain.DeleteClusterArgs) (*clusterdomain.DeleteClusterResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: cluster name is required", clusterdomain.ErrInvalidArgument)
	}

	cluster, err := s.clusterRepository.GetCluster(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	if cluster.State.Terminal() {
		return nil, fmt.Errorf("%w: %s", clusterdomain.ErrClusterTerminal, args.Name)
	}

	if _, err := s.clusterRepository.UpdateClusterState(ctx, args.Name, cluster.State, clusterdomain.ClusterStateDeleting); err != nil {
		return nil, err
	}

	op, err := s.recordOperation(ctx, args.Name, "delete")
	if err != nil {
		return nil, err
	}

	err = s.workPublisher.PublishTeardown(ctx, &clusterdomain.TeardownClusterMessage{
		ClusterName:   args.Name,
		OperationName: op.Operation.GetName(),
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue teardown of %s: %w", args.Name, err)
	}

	return &clusterdomain.DeleteClusterResult{Operation: op.Operation}, nil
}

func (s *Service) ExportCluster(ctx context.Context, args *clusterdomain.ExportClusterArgs) (*clusterdomain.ExportClusterResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: cluster name is required", clusterdomain.ErrInvalidArgument)
	}

	cluster, err := s.clusterRepository.GetCluster(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	if cluster.State != clusterdomain.ClusterStateRunning {
		return nil, fmt.Errorf("%w: %s is %s", clusterdomain.ErrClusterNotReady, args.Name, cluster.State)
	}

	op, err := s.recordOperation(ctx, args.Name, "export")
	if err != nil {
		return nil, err
	}

	err = s.workPublisher.PublishExport(ctx, &clusterdomain.ExportClusterMessage{
		ClusterName:   args.Name,
		OperationName: op.Operation.GetName(),
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue export of %s: %w", args.Name, err)
	}

	return &clusterdomain.ExportClusterResult{Operation: op.Operation}, nil
}

func (s *Service) recordOperation(ctx context.Context, target clusterdomain.ClusterName, verb string) (*opdomain.CreateOperationResult, error) {
	metadata, err := opdomain.NewMetadata(target.String(), verb)
	if err != nil {
		return nil, err
	}

	op, err := s.operationStore.CreateOperation(ctx, &opdomain.CreateOperationArgs{Metadata: metadata})
	if err != nil {
		return nil, fmt.Errorf("record %s operation for %s: %w", verb, target, err)
	}
	if op == nil || op.Operation == nil {
		return nil, fmt.Errorf("record %s operation for %s: empty result", verb, target)
	}
	return op, nil
}
