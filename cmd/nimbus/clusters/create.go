package clustercmd

import (
	"context"
	"fmt"

	apiclient "github.com/10Narratives/nimbus/internal/transport/http/client"
	"github.com/spf13/cobra"
)

func NewCreateClusterCmd() *cobra.Command {
	var (
		flags gatewayFlags

		displayName string
		nodeCount   int32
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a new cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if displayName == "" {
				return fmt.Errorf("--display-name is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			client, err := flags.client()
			if err != nil {
				return err
			}

			op, err := client.CreateCluster(ctx, &apiclient.CreateClusterRequest{
				DisplayName: displayName,
				NodeCount:   nodeCount,
			})
			if err != nil {
				return err
			}

			return flags.settle(ctx, cmd.OutOrStdout(), client, op)
		},
	}

	flags.register(cmd)
	flags.registerPolling(cmd)
	cmd.Flags().StringVar(&displayName, "display-name", "", "Human readable cluster name")
	cmd.Flags().Int32Var(&nodeCount, "node-count", 3, "Number of nodes (1..128)")

	return cmd
}
