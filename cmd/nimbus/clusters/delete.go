package clustercmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewDeleteClusterCmd() *cobra.Command {
	var (
		flags gatewayFlags

		clusterName string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Tear down a cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clusterName == "" {
				return fmt.Errorf("--name is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			client, err := flags.client()
			if err != nil {
				return err
			}

			op, err := client.DeleteCluster(ctx, clusterName)
			if err != nil {
				return err
			}

			return flags.settle(ctx, cmd.OutOrStdout(), client, op)
		},
	}

	flags.register(cmd)
	flags.registerPolling(cmd)
	cmd.Flags().StringVar(&clusterName, "name", "", "Cluster name, e.g. clusters/1234")

	return cmd
}
