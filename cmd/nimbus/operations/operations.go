package opcmd

import (
	"context"
	"fmt"
	"io"

	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

func NewOperationsGroup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "Commands for inspecting long-running operations",
	}

	cmd.AddCommand(
		NewGetOperationCmd(),
		NewListOperationsCmd(),
		NewWaitOperationCmd(),
		NewCancelOperationCmd(),
		NewDeleteOperationCmd(),
	)

	return cmd
}

func dialGateway(ctx context.Context, addr string, useTLS bool, caFile string) (*grpc.ClientConn, error) {
	var creds credentials.TransportCredentials
	if useTLS {
		if caFile != "" {
			c, err := credentials.NewClientTLSFromFile(caFile, "")
			if err != nil {
				return nil, err
			}
			creds = c
		} else {
			creds = credentials.NewTLS(nil)
		}
	} else {
		creds = insecure.NewCredentials()
	}

	return grpc.DialContext(ctx, addr, grpc.WithTransportCredentials(creds))
}

func printOperation(w io.Writer, op *longrunningpb.Operation) {
	switch result := op.GetResult().(type) {
	case *longrunningpb.Operation_Error:
		fmt.Fprintf(w, "operation: name=%s, done=%t, error_code=%d, error_message=%s\n",
			op.GetName(), op.GetDone(), result.Error.GetCode(), result.Error.GetMessage())
	case *longrunningpb.Operation_Response:
		fmt.Fprintf(w, "operation: name=%s, done=%t, response_type=%s\n",
			op.GetName(), op.GetDone(), result.Response.GetTypeUrl())
	default:
		fmt.Fprintf(w, "operation: name=%s, done=%t\n", op.GetName(), op.GetDone())
	}
}
