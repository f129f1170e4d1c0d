package opcmd

import (
	"context"
	"fmt"
	"time"

	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/spf13/cobra"
)

func NewListOperationsCmd() *cobra.Command {
	var (
		gatewayAddr string
		tls         bool
		caFile      string
		timeout     time.Duration

		filter    string
		pageSize  int32
		pageToken string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			conn, err := dialGateway(ctx, gatewayAddr, tls, caFile)
			if err != nil {
				return err
			}
			defer conn.Close()

			client := longrunningpb.NewOperationsClient(conn)

			token := pageToken
			for {
				resp, err := client.ListOperations(ctx, &longrunningpb.ListOperationsRequest{
					Filter:    filter,
					PageSize:  pageSize,
					PageToken: token,
				})
				if err != nil {
					return err
				}

				for _, op := range resp.GetOperations() {
					printOperation(cmd.OutOrStdout(), op)
				}

				token = resp.GetNextPageToken()
				if !all || token == "" {
					if token != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "next_page_token=%s\n", token)
					}
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&gatewayAddr, "gateway", "127.0.0.1:55055", "Gateway gRPC address host:port")
	cmd.Flags().BoolVar(&tls, "tls", false, "Use TLS")
	cmd.Flags().StringVar(&caFile, "tls-ca", "", "CA file (PEM), optional")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "Overall timeout")

	cmd.Flags().StringVar(&filter, "filter", "", `Filter: "done" or "running" (empty lists all)`)
	cmd.Flags().Int32Var(&pageSize, "page-size", 50, "Max results per page (0 lets server decide)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token (from next_page_token)")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch all pages automatically")

	return cmd
}
