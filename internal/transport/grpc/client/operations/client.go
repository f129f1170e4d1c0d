package opclient

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/10Narratives/nimbus/pkg/lro"
)

// NewStatusFetcher adapts a longrunning Operations client to the waiter's
// status-fetch capability. gRPC transport errors pass through untouched so
// the waiter's transient classification sees the original codes.
func NewStatusFetcher(client longrunningpb.OperationsClient) lro.StatusFetcher {
	return lro.StatusFetcherFunc(func(ctx context.Context, name string) (*longrunningpb.Operation, error) {
		return client.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: name})
	})
}
