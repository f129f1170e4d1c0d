package clustersrv_test

import (
	"context"
	"errors"
	"testing"

	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	clustersrv "github.com/10Narratives/nimbus/internal/services/clusters"
	"github.com/10Narratives/nimbus/internal/services/clusters/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*clustersrv.Service, *mocks.ClusterRepository, *mocks.OperationStore, *mocks.WorkPublisher) {
	t.Helper()

	repo := mocks.NewClusterRepository(t)
	ops := mocks.NewOperationStore(t)
	pub := mocks.NewWorkPublisher(t)

	svc, err := clustersrv.NewService(repo, ops, pub)
	require.NoError(t, err)

	return svc, repo, ops, pub
}

func recordedOperation(name string) *opdomain.CreateOperationResult {
	return &opdomain.CreateOperationResult{
		Operation: &longrunning.Operation{Name: name},
	}
}

func TestNewService(t *testing.T) {
	t.Run("error: nil cluster repository", func(t *testing.T) {
		svc, err := clustersrv.NewService(nil, mocks.NewOperationStore(t), mocks.NewWorkPublisher(t))
		require.Error(t, err)
		require.Nil(t, svc)
	})

	t.Run("error: nil operation store", func(t *testing.T) {
		svc, err := clustersrv.NewService(mocks.NewClusterRepository(t), nil, mocks.NewWorkPublisher(t))
		require.Error(t, err)
		require.Nil(t, svc)
	})

	t.Run("error: nil work publisher", func(t *testing.T) {
		svc, err := clustersrv.NewService(mocks.NewClusterRepository(t), mocks.NewOperationStore(t), nil)
		require.Error(t, err)
		require.Nil(t, svc)
	})
}

func TestService_CreateCluster(t *testing.T) {
	ctx := context.Background()

	t.Run("error: blank display name", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		res, err := svc.CreateCluster(ctx, &clusterdomain.CreateClusterArgs{DisplayName: "  ", NodeCount: 3})
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
		require.Nil(t, res)
	})

	t.Run("error: node count out of range", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		res, err := svc.CreateCluster(ctx, &clusterdomain.CreateClusterArgs{DisplayName: "primary", NodeCount: 1000})
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
		require.Nil(t, res)
	})

	t.Run("error: repo failure passed through", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		wantErr := errors.New("kv down")
		repo.EXPECT().CreateCluster(ctx, mock.Anything).Return(wantErr).Once()

		res, err := svc.CreateCluster(ctx, &clusterdomain.CreateClusterArgs{DisplayName: "primary", NodeCount: 3})
		require.ErrorIs(t, err, wantErr)
		require.Nil(t, res)
	})

	t.Run("ok: records operation and enqueues provisioning", func(t *testing.T) {
		svc, repo, ops, pub := newService(t)

		repo.EXPECT().
			CreateCluster(ctx, mock.MatchedBy(func(c *clusterdomain.Cluster) bool {
				return c.State == clusterdomain.ClusterStateProvisioning &&
					c.DisplayName == "primary" &&
					c.NodeCount == 3 &&
					c.Name != ""
			})).
			Return(nil).
			Once()
		ops.EXPECT().
			CreateOperation(ctx, mock.MatchedBy(func(args *opdomain.CreateOperationArgs) bool {
				return args.Metadata != nil
			})).
			Return(recordedOperation("operations/1"), nil).
			Once()
		pub.EXPECT().
			PublishProvision(ctx, mock.MatchedBy(func(msg *clusterdomain.ProvisionClusterMessage) bool {
				return msg.OperationName == "operations/1" && msg.ClusterName != ""
			})).
			Return(nil).
			Once()

		res, err := svc.CreateCluster(ctx, &clusterdomain.CreateClusterArgs{DisplayName: "primary", NodeCount: 3})
		require.NoError(t, err)
		require.NotNil(t, res.Cluster)
		require.Equal(t, "operations/1", res.Operation.GetName())
	})

	t.Run("error: publish failure surfaces", func(t *testing.T) {
		svc, repo, ops, pub := newService(t)

		repo.EXPECT().CreateCluster(ctx, mock.Anything).Return(nil).Once()
		ops.EXPECT().CreateOperation(ctx, mock.Anything).Return(recordedOperation("operations/1"), nil).Once()
		pub.EXPECT().PublishProvision(ctx, mock.Anything).Return(errors.New("nats down")).Once()

		res, err := svc.CreateCluster(ctx, &clusterdomain.CreateClusterArgs{DisplayName: "primary", NodeCount: 3})
		require.Error(t, err)
		require.Contains(t, err.Error(), "enqueue provisioning")
		require.Nil(t, res)
	})
}

func TestService_GetCluster(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty name", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		res, err := svc.GetCluster(ctx, &clusterdomain.GetClusterArgs{})
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
		require.Nil(t, res)
	})

	t.Run("ok: delegates to repository", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		want := &clusterdomain.Cluster{Name: "clusters/1", State: clusterdomain.ClusterStateRunning}
		repo.EXPECT().GetCluster(ctx, clusterdomain.ClusterName("clusters/1")).Return(want, nil).Once()

		res, err := svc.GetCluster(ctx, &clusterdomain.GetClusterArgs{Name: "clusters/1"})
		require.NoError(t, err)
		require.Equal(t, want, res.Cluster)
	})
}

func TestService_ListClusters(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: nil args get defaults", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().
			ListClusters(ctx, int32(50), "").
			Return([]*clusterdomain.Cluster{}, "", nil).
			Once()

		res, err := svc.ListClusters(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, res.Clusters)
	})

	t.Run("ok: page size clamped to maximum", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().
			ListClusters(ctx, int32(1000), "tok").
			Return([]*clusterdomain.Cluster{}, "next", nil).
			Once()

		res, err := svc.ListClusters(ctx, &clusterdomain.ListClustersArgs{PageSize: 9999, PageToken: "tok"})
		require.NoError(t, err)
		require.Equal(t, "next", res.NextPageToken)
	})
}

func TestService_DeleteCluster(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty name", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		res, err := svc.DeleteCluster(ctx, &clusterdomain.DeleteClusterArgs{})
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
		require.Nil(t, res)
	})

	t.Run("error: terminal cluster cannot be deleted", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().
			GetCluster(ctx, clusterdomain.ClusterName("clusters/1")).
			Return(&clusterdomain.Cluster{Name: "clusters/1", State: clusterdomain.ClusterStateDeleted}, nil).
			Once()

		res, err := svc.DeleteCluster(ctx, &clusterdomain.DeleteClusterArgs{Name: "clusters/1"})
		require.ErrorIs(t, err, clusterdomain.ErrClusterTerminal)
		require.Nil(t, res)
	})

	t.Run("ok: moves cluster to DELETING and enqueues teardown", func(t *testing.T) {
		svc, repo, ops, pub := newService(t)

		repo.EXPECT().
			GetCluster(ctx, clusterdomain.ClusterName("clusters/1")).
			Return(&clusterdomain.Cluster{Name: "clusters/1", State: clusterdomain.ClusterStateRunning}, nil).
			Once()
		repo.EXPECT().
			UpdateClusterState(ctx, clusterdomain.ClusterName("clusters/1"),
				clusterdomain.ClusterStateRunning, clusterdomain.ClusterStateDeleting).
			Return(&clusterdomain.Cluster{Name: "clusters/1", State: clusterdomain.ClusterStateDeleting}, nil).
			Once()
		ops.EXPECT().CreateOperation(ctx, mock.Anything).Return(recordedOperation("operations/2"), nil).Once()
		pub.EXPECT().
			PublishTeardown(ctx, &clusterdomain.TeardownClusterMessage{
				ClusterName:   "clusters/1",
				OperationName: "operations/2",
			}).
			Return(nil).
			Once()

		res, err := svc.DeleteCluster(ctx, &clusterdomain.DeleteClusterArgs{Name: "clusters/1"})
		require.NoError(t, err)
		require.Equal(t, "operations/2", res.Operation.GetName())
	})
}

func TestService_ExportCluster(t *testing.T) {
	ctx := context.Background()

	t.Run("error: cluster is not running", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().
			GetCluster(ctx, clusterdomain.ClusterName("clusters/1")).
			Return(&clusterdomain.Cluster{Name: "clusters/1", State: clusterdomain.ClusterStateProvisioning}, nil).
			Once()

		res, err := svc.ExportCluster(ctx, &clusterdomain.ExportClusterArgs{Name: "clusters/1"})
		require.ErrorIs(t, err, clusterdomain.ErrClusterNotReady)
		require.Nil(t, res)
	})

	t.Run("ok: records operation and enqueues export", func(t *testing.T) {
		svc, repo, ops, pub := newService(t)

		repo.EXPECT().
			GetCluster(ctx, clusterdomain.ClusterName("clusters/1")).
			Return(&clusterdomain.Cluster{Name: "clusters/1", State: clusterdomain.ClusterStateRunning}, nil).
			Once()
		ops.EXPECT().CreateOperation(ctx, mock.Anything).Return(recordedOperation("operations/3"), nil).Once()
		pub.EXPECT().
			PublishExport(ctx, &clusterdomain.ExportClusterMessage{
				ClusterName:   "clusters/1",
				OperationName: "operations/3",
			}).
			Return(nil).
			Once()

		res, err := svc.ExportCluster(ctx, &clusterdomain.ExportClusterArgs{Name: "clusters/1"})
		require.NoError(t, err)
		require.Equal(t, "operations/3", res.Operation.GetName())
	})
}
