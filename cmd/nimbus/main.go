package main

import (
	"context"
	"os/signal"
	"syscall"

	clustercmd "github.com/10Narratives/nimbus/cmd/nimbus/clusters"
	opcmd "github.com/10Narratives/nimbus/cmd/nimbus/operations"
	errorutils "github.com/10Narratives/nimbus/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "nimbus",
		Short: "Tool for managed cluster administration",
		Long:  "Tool for managing clusters and the long-running operations that mutate them in the Nimbus platform.",
	}

	rootCmd.AddCommand(
		clustercmd.NewClustersGroup(),
		opcmd.NewOperationsGroup(),
	)

	errorutils.Try(rootCmd.ExecuteContext(ctx))
}
