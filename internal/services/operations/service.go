package opsrv

import (
	"context"
	"errors"
	"fmt"
	"time"

	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	"github.com/10Narratives/nimbus/pkg/lro"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
)

const (
	defaultWaitTimeout = 30 * time.Second
	maxWaitTimeout     = 10 * time.Minute
)

//go:generate go tool mockery
type OperationRepository interface {
	opdomain.OperationGetter
	opdomain.OperationLister
	opdomain.OperationDeleter
	opdomain.OperationCreator
	opdomain.OperationCompleter
}

type Service struct {
	operationRepository OperationRepository
}

func NewService(operationRepository OperationRepository) (*Service, error) {
	if operationRepository == nil {
		return nil, errors.New("operation repository is required")
	}

	return &Service{operationRepository: operationRepository}, nil
}

func (s *Service) CreateOperation(ctx context.Context, args *opdomain.CreateOperationArgs) (*opdomain.CreateOperationResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: args are required", opdomain.ErrInvalidArgument)
	}
	return s.operationRepository.CreateOperation(ctx, args)
}

func (s *Service) GetOperation(ctx context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}
	return s.operationRepository.GetOperation(ctx, args)
}

func (s *Service) ListOperations(ctx context.Context, args *opdomain.ListOperationsArgs) (*opdomain.ListOperationsResult, error) {
	if args == nil {
		args = &opdomain.ListOperationsArgs{}
	}

	if args.PageSize < 1 {
		args.PageSize = 50
	}
	args.PageSize = min(args.PageSize, 1000)

	return s.operationRepository.ListOperations(ctx, args)
}

func (s *Service) DeleteOperation(ctx context.Context, args *opdomain.DeleteOperationArgs) error {
	if args == nil || args.Name == "" {
		return fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}
	return s.operationRepository.DeleteOperation(ctx, args)
}

func (s *Service) CompleteOperation(ctx context.Context, args *opdomain.CompleteOperationArgs) (*opdomain.CompleteOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}
	return s.operationRepository.CompleteOperation(ctx, args)
}

// CancelOperation completes the operation with a CANCELLED status. The
// server-side work may still observe the cancellation late; completing first
// wins, which is surfaced as ErrOperationCompleted.
func (s *Service) CancelOperation(ctx context.Context, args *opdomain.CancelOperationArgs) error {
	if args == nil || args.Name == "" {
		return fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	_, err := s.operationRepository.CompleteOperation(ctx, &opdomain.CompleteOperationArgs{
		Name: args.Name,
		Error: &statuspb.Status{
			Code:    int32(codes.Canceled),
			Message: "operation canceled by user",
		},
	})
	return err
}

// WaitOperation blocks until the operation is done or the timeout elapses,
// following google.longrunning semantics: the latest snapshot is returned in
// both cases, a done-with-error operation is a successful wait.
func (s *Service) WaitOperation(ctx context.Context, args *opdomain.WaitOperationArgs) (*opdomain.WaitOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	timeout := args.Timeout
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	if timeout > maxWaitTimeout {
		timeout = maxWaitTimeout
	}

	fetcher := lro.StatusFetcherFunc(func(ctx context.Context, name string) (*longrunning.Operation, error) {
		res, err := s.operationRepository.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opdomain.OperationName(name)})
		if err != nil {
			return nil, err
		}
		return res.Operation, nil
	})

	op, err := lro.Wait(ctx, fetcher, args.Name.String(), lro.PollPolicy{
		Initial:    50 * time.Millisecond,
		Multiplier: 1.5,
		Ceiling:    time.Second,
		MaxWait:    timeout,
	})

	var opErr *lro.OperationError
	var timeoutErr *lro.TimeoutError
	switch {
	case err == nil:
		return &opdomain.WaitOperationResult{Operation: op}, nil
	case errors.As(err, &opErr):
		return &opdomain.WaitOperationResult{Operation: opErr.Op}, nil
	case errors.As(err, &timeoutErr):
		return &opdomain.WaitOperationResult{Operation: timeoutErr.Last}, nil
	default:
		return nil, err
	}
}
