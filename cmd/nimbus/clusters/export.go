package clustercmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/10Narratives/nimbus/pkg/lro"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

func NewExportClusterCmd() *cobra.Command {
	var (
		flags gatewayFlags

		clusterName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a cluster snapshot to object storage",
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

			op, err := client.ExportCluster(ctx, clusterName)
			if err != nil {
				return err
			}

			if flags.async {
				fmt.Fprintf(cmd.OutOrStdout(), "operation: name=%s, done=%t\n", op.GetName(), op.GetDone())
				return nil
			}

			name := op.GetName()
			op, err = lro.Wait(ctx, client, name, flags.policy())
			if err != nil {
				var timeoutErr *lro.TimeoutError
				if errors.As(err, &timeoutErr) {
					return fmt.Errorf("gave up waiting after %s: operation %s may still be running", timeoutErr.MaxWait, name)
				}
				return err
			}

			var result structpb.Struct
			if payload := op.GetResponse(); payload != nil {
				if err := payload.UnmarshalTo(&result); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "snapshot uploaded: object_key=%s\n",
						result.GetFields()["object_key"].GetStringValue())
					return nil
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "operation %s completed\n", name)
			return nil
		},
	}

	flags.register(cmd)
	flags.registerPolling(cmd)
	cmd.Flags().StringVar(&clusterName, "name", "", "Cluster name, e.g. clusters/1234")

	return cmd
}
