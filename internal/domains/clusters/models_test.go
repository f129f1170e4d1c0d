package clusterdomain_test

import (
	"testing"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	"github.com/stretchr/testify/require"
)

func TestParseClusterName(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		name, err := clusterdomain.ParseClusterName("clusters/prod-eu-1")
		require.NoError(t, err)
		require.Equal(t, clusterdomain.ClusterName("clusters/prod-eu-1"), name)
	})

	t.Run("error: bare id", func(t *testing.T) {
		_, err := clusterdomain.ParseClusterName("prod-eu-1")
		require.ErrorIs(t, err, clusterdomain.ErrInvalidClusterName)
	})

	t.Run("error: missing id", func(t *testing.T) {
		_, err := clusterdomain.ParseClusterName("clusters/")
		require.ErrorIs(t, err, clusterdomain.ErrInvalidClusterName)
	})
}

func TestClusterState_Terminal(t *testing.T) {
	require.False(t, clusterdomain.ClusterStateProvisioning.Terminal())
	require.False(t, clusterdomain.ClusterStateRunning.Terminal())
	require.False(t, clusterdomain.ClusterStateDeleting.Terminal())
	require.True(t, clusterdomain.ClusterStateDeleted.Terminal())
	require.True(t, clusterdomain.ClusterStateError.Terminal())
}

func TestCluster_AnyRoundTrip(t *testing.T) {
	in := &clusterdomain.Cluster{
		Name:        "clusters/abc",
		DisplayName: "analytics",
		NodeCount:   3,
		State:       clusterdomain.ClusterStateRunning,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
	}

	payload, err := in.ToAny()
	require.NoError(t, err)

	out, err := clusterdomain.ClusterFromAny(payload)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestClusterFromAny_NilPayload(t *testing.T) {
	_, err := clusterdomain.ClusterFromAny(nil)
	require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
}
