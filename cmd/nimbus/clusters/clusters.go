package clustercmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	apiclient "github.com/10Narratives/nimbus/internal/transport/http/client"
	"github.com/10Narratives/nimbus/pkg/lro"
	"github.com/spf13/cobra"
)

func NewClustersGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Commands for managing clusters",
	}

	cmd.AddCommand(
		NewCreateClusterCmd(),
		NewGetClusterCmd(),
		NewListClustersCmd(),
		NewDeleteClusterCmd(),
		NewExportClusterCmd(),
	)

	return cmd
}

// gatewayFlags is the connection and polling flag set every cluster command
// shares. Mutating commands return an operation; unless --async is set the
// command polls it to completion before returning.
type gatewayFlags struct {
	endpoint string
	timeout  time.Duration

	async          bool
	pollInitial    time.Duration
	pollMultiplier float64
	pollCeiling    time.Duration
}

func (f *gatewayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "http://127.0.0.1:8080", "Gateway HTTP base URL")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 15*time.Minute, "Overall timeout")
}

func (f *gatewayFlags) registerPolling(cmd *cobra.Command) {
	defaults := lro.DefaultPolicy()
	cmd.Flags().BoolVar(&f.async, "async", false, "Return the operation immediately instead of waiting")
	cmd.Flags().DurationVar(&f.pollInitial, "poll-initial", defaults.Initial, "First poll interval")
	cmd.Flags().Float64Var(&f.pollMultiplier, "poll-multiplier", defaults.Multiplier, "Backoff multiplier applied after every poll")
	cmd.Flags().DurationVar(&f.pollCeiling, "poll-ceiling", defaults.Ceiling, "Largest poll interval")
}

func (f *gatewayFlags) client() (*apiclient.Client, error) {
	return apiclient.New(f.endpoint, 30*time.Second)
}

func (f *gatewayFlags) policy() lro.PollPolicy {
	policy := lro.DefaultPolicy()
	policy.Initial = f.pollInitial
	policy.Multiplier = f.pollMultiplier
	policy.Ceiling = f.pollCeiling
	policy.MaxWait = f.timeout
	return policy
}

// settle waits out the operation unless the command runs with --async.
func (f *gatewayFlags) settle(ctx context.Context, w io.Writer, client *apiclient.Client, op *longrunningpb.Operation) error {
	if f.async {
		fmt.Fprintf(w, "operation: name=%s, done=%t\n", op.GetName(), op.GetDone())
		return nil
	}

	name := op.GetName()
	op, err := lro.Wait(ctx, client, name, f.policy())
	if err != nil {
		var timeoutErr *lro.TimeoutError
		if errors.As(err, &timeoutErr) {
			return fmt.Errorf("gave up waiting after %s: operation %s may still be running", timeoutErr.MaxWait, name)
		}
		return err
	}

	if payload := op.GetResponse(); payload != nil {
		if cluster, err := clusterdomain.ClusterFromAny(payload); err == nil {
			printCluster(w, cluster)
			return nil
		}
	}

	fmt.Fprintf(w, "operation %s completed\n", op.GetName())
	return nil
}

func printCluster(w io.Writer, cluster *clusterdomain.Cluster) {
	fmt.Fprintf(w, "cluster: name=%s, display_name=%s, node_count=%d, state=%s, created_at=%s, updated_at=%s\n",
		cluster.Name,
		cluster.DisplayName,
		cluster.NodeCount,
		cluster.State,
		cluster.CreatedAt.Format(time.RFC3339),
		cluster.UpdatedAt.Format(time.RFC3339),
	)
}
