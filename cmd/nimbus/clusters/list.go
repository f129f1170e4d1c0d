package clustercmd

import (
	"context"
	"fmt"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	sliceutils "github.com/10Narratives/nimbus/pkg/slices"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func NewListClustersCmd() *cobra.Command {
	var (
		flags gatewayFlags

		pageSize  int32
		pageToken string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			client, err := flags.client()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"NAME", "DISPLAY NAME", "NODES", "STATE", "CREATED"})

			token := pageToken
			nextToken := ""
			for {
				resp, err := client.ListClusters(ctx, pageSize, token)
				if err != nil {
					return err
				}

				t.AppendRows(sliceutils.Map(resp.Clusters, func(cluster *clusterdomain.Cluster) table.Row {
					return table.Row{
						cluster.Name,
						cluster.DisplayName,
						cluster.NodeCount,
						cluster.State,
						cluster.CreatedAt.Format(time.RFC3339),
					}
				}))

				nextToken = resp.NextPageToken
				if !all || nextToken == "" {
					break
				}
				token = nextToken
			}

			t.Render()
			if nextToken != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "next_page_token=%s\n", nextToken)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Int32Var(&pageSize, "page-size", 50, "Max results per page (0 lets server decide)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token (from next_page_token)")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch all pages automatically")

	return cmd
}
