package opapi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	opapi "github.com/10Narratives/nimbus/internal/transport/grpc/api/operations"
	opapimocks "github.com/10Narratives/nimbus/internal/transport/grpc/api/operations/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestServer_GetOperation_InvalidName(t *testing.T) {
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	_, err := srv.GetOperation(context.Background(), &longrunningpb.GetOperationRequest{Name: "bad/1"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_GetOperation_NotFoundMapped(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		GetOperation(ctx, &opdomain.GetOperationArgs{Name: "operations/404"}).
		Return(nil, opdomain.ErrOperationNotFound)

	_, err := srv.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: "operations/404"})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_GetOperation_MissingResult(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		GetOperation(ctx, mock.Anything).
		Return(nil, nil)

	_, err := srv.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: "operations/1"})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestServer_GetOperation_OK(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	want := &longrunningpb.Operation{Name: "operations/1", Done: true}
	svc.EXPECT().
		GetOperation(ctx, &opdomain.GetOperationArgs{Name: "operations/1"}).
		Return(&opdomain.GetOperationResult{Operation: want}, nil)

	got, err := srv.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: "operations/1"})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestServer_ListOperations_NilReq(t *testing.T) {
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	_, err := srv.ListOperations(context.Background(), nil)
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_ListOperations_ServiceErrorMapped(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		ListOperations(ctx, mock.Anything).
		Return(nil, opdomain.ErrInvalidArgument)

	_, err := srv.ListOperations(ctx, &longrunningpb.ListOperationsRequest{Filter: "weird"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_ListOperations_OK(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	op1 := &longrunningpb.Operation{Name: "operations/1"}
	op2 := &longrunningpb.Operation{Name: "operations/2", Done: true}

	req := &longrunningpb.ListOperationsRequest{
		Filter:    "done",
		PageSize:  2,
		PageToken: "t",
	}

	svc.EXPECT().
		ListOperations(ctx, mock.MatchedBy(func(a *opdomain.ListOperationsArgs) bool {
			return a != nil &&
				a.Filter == req.GetFilter() &&
				a.PageSize == req.GetPageSize() &&
				a.PageToken == req.GetPageToken()
		})).
		Return(&opdomain.ListOperationsResult{
			Operations:    []*longrunningpb.Operation{op1, op2},
			NextPageToken: "next",
		}, nil)

	res, err := srv.ListOperations(ctx, req)
	require.NoError(t, err)
	require.Len(t, res.GetOperations(), 2)
	require.Equal(t, "next", res.GetNextPageToken())
}

func TestServer_CancelOperation_EmptyName(t *testing.T) {
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	_, err := srv.CancelOperation(context.Background(), &longrunningpb.CancelOperationRequest{})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_CancelOperation_AlreadyCompletedMapped(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		CancelOperation(ctx, &opdomain.CancelOperationArgs{Name: "operations/1"}).
		Return(opdomain.ErrOperationCompleted)

	_, err := srv.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{Name: "operations/1"})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestServer_CancelOperation_OK(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		CancelOperation(ctx, &opdomain.CancelOperationArgs{Name: "operations/1"}).
		Return(nil)

	res, err := srv.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{Name: "operations/1"})
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestServer_DeleteOperation_OK(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		DeleteOperation(ctx, &opdomain.DeleteOperationArgs{Name: "operations/1"}).
		Return(nil)

	res, err := srv.DeleteOperation(ctx, &longrunningpb.DeleteOperationRequest{Name: "operations/1"})
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestServer_DeleteOperation_UnknownErrorIsInternal(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		DeleteOperation(ctx, mock.Anything).
		Return(errors.New("kv down"))

	_, err := srv.DeleteOperation(ctx, &longrunningpb.DeleteOperationRequest{Name: "operations/1"})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestServer_WaitOperation_TimeoutForwarded(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	want := &longrunningpb.Operation{Name: "operations/1", Done: true}
	svc.EXPECT().
		WaitOperation(ctx, &opdomain.WaitOperationArgs{
			Name:    "operations/1",
			Timeout: 5 * time.Second,
		}).
		Return(&opdomain.WaitOperationResult{Operation: want}, nil)

	got, err := srv.WaitOperation(ctx, &longrunningpb.WaitOperationRequest{
		Name:    "operations/1",
		Timeout: durationpb.New(5 * time.Second),
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestServer_WaitOperation_MissingResult(t *testing.T) {
	ctx := context.Background()
	svc := opapimocks.NewOperationService(t)
	srv := opapi.NewServer(svc)

	svc.EXPECT().
		WaitOperation(ctx, mock.Anything).
		Return(nil, nil)

	_, err := srv.WaitOperation(ctx, &longrunningpb.WaitOperationRequest{Name: "operations/1"})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}
