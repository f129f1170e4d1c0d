package opapi

import (
	"context"
	"errors"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	grpctr "github.com/10Narratives/nimbus/internal/transport/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

//go:generate go tool mockery
type OperationService interface {
	opdomain.OperationGetter
	opdomain.OperationLister
	opdomain.OperationWaiter
	opdomain.OperationCanceler
	opdomain.OperationDeleter
}

// Server exposes the operations service as google.longrunning.Operations.
type Server struct {
	longrunningpb.UnimplementedOperationsServer
	operationService OperationService
}

func NewServer(operationService OperationService) *Server {
	return &Server{operationService: operationService}
}

func NewRegistration(operationService OperationService) grpctr.ServiceRegistration {
	return func(s *grpc.Server) {
		longrunningpb.RegisterOperationsServer(s, NewServer(operationService))
	}
}

func (s *Server) GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest) (*longrunningpb.Operation, error) {
	name, err := requireName(req.GetName())
	if err != nil {
		return nil, err
	}

	res, err := s.operationService.GetOperation(ctx, &opdomain.GetOperationArgs{Name: name})
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil || res.Operation == nil {
		return nil, status.Error(codes.Internal, "missing operation in result")
	}

	return res.Operation, nil
}

func (s *Server) ListOperations(ctx context.Context, req *longrunningpb.ListOperationsRequest) (*longrunningpb.ListOperationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	res, err := s.operationService.ListOperations(ctx, &opdomain.ListOperationsArgs{
		Filter:    req.GetFilter(),
		PageSize:  req.GetPageSize(),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil {
		return nil, status.Error(codes.Internal, "missing result")
	}

	return &longrunningpb.ListOperationsResponse{
		Operations:    res.Operations,
		NextPageToken: res.NextPageToken,
	}, nil
}

func (s *Server) CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest) (*emptypb.Empty, error) {
	name, err := requireName(req.GetName())
	if err != nil {
		return nil, err
	}

	if err := s.operationService.CancelOperation(ctx, &opdomain.CancelOperationArgs{Name: name}); err != nil {
		return nil, toStatusErr(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *Server) DeleteOperation(ctx context.Context, req *longrunningpb.DeleteOperationRequest) (*emptypb.Empty, error) {
	name, err := requireName(req.GetName())
	if err != nil {
		return nil, err
	}

	if err := s.operationService.DeleteOperation(ctx, &opdomain.DeleteOperationArgs{Name: name}); err != nil {
		return nil, toStatusErr(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *Server) WaitOperation(ctx context.Context, req *longrunningpb.WaitOperationRequest) (*longrunningpb.Operation, error) {
	name, err := requireName(req.GetName())
	if err != nil {
		return nil, err
	}

	args := &opdomain.WaitOperationArgs{Name: name}
	if req.GetTimeout() != nil {
		args.Timeout = req.GetTimeout().AsDuration()
	}

	res, err := s.operationService.WaitOperation(ctx, args)
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil || res.Operation == nil {
		return nil, status.Error(codes.Internal, "missing operation in result")
	}

	return res.Operation, nil
}

func requireName(raw string) (opdomain.OperationName, error) {
	name, err := opdomain.ParseOperationName(raw)
	if err != nil {
		return "", toStatusErr(err)
	}
	return name, nil
}

func toStatusErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	switch {
	case errors.Is(err, opdomain.ErrOperationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, opdomain.ErrInvalidOperationName),
		errors.Is(err, opdomain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, opdomain.ErrOperationCompleted):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
