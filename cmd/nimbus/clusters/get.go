package clustercmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewGetClusterCmd() *cobra.Command {
	var (
		flags gatewayFlags

		clusterName string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get cluster metadata",
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

			cluster, err := client.GetCluster(ctx, clusterName)
			if err != nil {
				return err
			}

			printCluster(cmd.OutOrStdout(), cluster)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&clusterName, "name", "", "Cluster name, e.g. clusters/1234")

	return cmd
}
