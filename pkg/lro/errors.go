package lro

import (
	"fmt"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/status"
)

// OperationError reports that the server finished the operation with an
// error. Status carries the server-provided error verbatim; Op is the
// terminal operation snapshot it was observed on.
type OperationError struct {
	Name   string
	Status *statuspb.Status
	Op     *longrunningpb.Operation
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s failed: %s", e.Name, status.FromProto(e.Status).Message())
}

// GRPCStatus exposes the server error to status.FromError and friends.
func (e *OperationError) GRPCStatus() *status.Status {
	return status.FromProto(e.Status)
}

// TimeoutError reports that the poll budget elapsed before the operation
// reached a terminal state. The operation may still complete later; Last
// holds the most recent snapshot observed.
type TimeoutError struct {
	Name    string
	MaxWait time.Duration
	Last    *longrunningpb.Operation
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation %s did not finish within %s and may still be running", e.Name, e.MaxWait)
}
