package opcmd

import (
	"errors"
	"fmt"
	"time"

	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opclient "github.com/10Narratives/nimbus/internal/transport/grpc/client/operations"
	"github.com/10Narratives/nimbus/pkg/lro"
	"github.com/spf13/cobra"
)

func NewWaitOperationCmd() *cobra.Command {
	var (
		operationName string
		gatewayAddr   string
		tls           bool
		caFile        string

		pollInitial    time.Duration
		pollMultiplier float64
		pollCeiling    time.Duration
		timeout        time.Duration
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Block until an operation completes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if operationName == "" {
				return fmt.Errorf("--name is required")
			}

			conn, err := dialGateway(cmd.Context(), gatewayAddr, tls, caFile)
			if err != nil {
				return err
			}
			defer conn.Close()

			policy := lro.DefaultPolicy()
			policy.Initial = pollInitial
			policy.Multiplier = pollMultiplier
			policy.Ceiling = pollCeiling
			policy.MaxWait = timeout

			fetcher := opclient.NewStatusFetcher(longrunningpb.NewOperationsClient(conn))

			var opts []lro.Option
			if verbose {
				opts = append(opts, lro.WithProgress(func(op *longrunningpb.Operation) {
					fmt.Fprintf(cmd.ErrOrStderr(), "still waiting for %s\n", op.GetName())
				}))
			}

			op, err := lro.Wait(cmd.Context(), fetcher, operationName, policy, opts...)
			if err != nil {
				var timeoutErr *lro.TimeoutError
				if errors.As(err, &timeoutErr) {
					return fmt.Errorf("gave up waiting after %s: operation %s may still be running", timeoutErr.MaxWait, operationName)
				}
				return err
			}

			printOperation(cmd.OutOrStdout(), op)
			return nil
		},
	}

	cmd.Flags().StringVar(&operationName, "name", "", "Operation name, e.g. operations/1234")
	cmd.Flags().StringVar(&gatewayAddr, "gateway", "127.0.0.1:55055", "Gateway gRPC address host:port")
	cmd.Flags().BoolVar(&tls, "tls", false, "Use TLS")
	cmd.Flags().StringVar(&caFile, "tls-ca", "", "CA file (PEM), optional")

	defaults := lro.DefaultPolicy()
	cmd.Flags().DurationVar(&pollInitial, "poll-initial", defaults.Initial, "First poll interval")
	cmd.Flags().Float64Var(&pollMultiplier, "poll-multiplier", defaults.Multiplier, "Backoff multiplier applied after every poll")
	cmd.Flags().DurationVar(&pollCeiling, "poll-ceiling", defaults.Ceiling, "Largest poll interval")
	cmd.Flags().DurationVar(&timeout, "timeout", defaults.MaxWait, "Give up after this much total waiting")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Report progress on stderr while waiting")

	return cmd
}
