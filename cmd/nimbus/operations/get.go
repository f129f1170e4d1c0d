package opcmd

import (
	"context"
	"fmt"
	"time"

	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/spf13/cobra"
)

func NewGetOperationCmd() *cobra.Command {
	var (
		operationName string
		gatewayAddr   string
		tls           bool
		caFile        string
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get the current state of an operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if operationName == "" {
				return fmt.Errorf("--name is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			conn, err := dialGateway(ctx, gatewayAddr, tls, caFile)
			if err != nil {
				return err
			}
			defer conn.Close()

			client := longrunningpb.NewOperationsClient(conn)
			op, err := client.GetOperation(ctx, &longrunningpb.GetOperationRequest{
				Name: operationName,
			})
			if err != nil {
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
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "Overall timeout")

	return cmd
}
