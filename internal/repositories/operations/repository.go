package oprepo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"

	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/nimbus/internal/domains/operations"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// Repository keeps operations in a JetStream key-value bucket, one protojson
// document per operation, keyed by resource name.
type Repository struct {
	kv jetstream.KeyValue
}

func NewRepository(kv jetstream.KeyValue) (*Repository, error) {
	if kv == nil {
		return nil, errors.New("key-value bucket is required")
	}
	return &Repository{kv: kv}, nil
}

func (r *Repository) CreateOperation(ctx context.Context, args *opdomain.CreateOperationArgs) (*opdomain.CreateOperationResult, error) {
	if args == nil {
		return nil, opdomain.ErrInvalidArgument
	}

	name := opdomain.NameFromID(uuid.NewString())
	op := &longrunning.Operation{
		Name:     name.String(),
		Metadata: args.Metadata,
	}

	b, err := protojson.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("marshal operation %s: %w", name, err)
	}

	if _, err := r.kv.Create(ctx, name.String(), b); err != nil {
		return nil, fmt.Errorf("store operation %s: %w", name, err)
	}

	return &opdomain.CreateOperationResult{Operation: op}, nil
}

func (r *Repository) GetOperation(ctx context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, opdomain.ErrInvalidArgument
	}

	_, op, err := r.getEntry(ctx, args.Name)
	if err != nil {
		return nil, err
	}

	return &opdomain.GetOperationResult{Operation: op}, nil
}

func (r *Repository) ListOperations(ctx context.Context, args *opdomain.ListOperationsArgs) (*opdomain.ListOperationsResult, error) {
	if args == nil {
		return nil, opdomain.ErrInvalidArgument
	}

	keep, err := filterPredicate(args.Filter)
	if err != nil {
		return nil, err
	}

	pageSize := int(args.PageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	lister, err := r.kv.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, 128)
	for k := range lister.Keys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start, err := startIndex(keys, args.PageToken)
	if err != nil {
		return nil, err
	}

	operations := make([]*longrunning.Operation, 0, pageSize)
	nextToken := ""
	for _, key := range keys[start:] {
		_, op, err := r.getEntry(ctx, opdomain.OperationName(key))
		if err != nil {
			if errors.Is(err, opdomain.ErrOperationNotFound) {
				// deleted between listing and fetching
				continue
			}
			return nil, err
		}
		if !keep(op) {
			continue
		}

		if len(operations) == pageSize {
			nextToken = encodeToken(operations[len(operations)-1].GetName())
			break
		}
		operations = append(operations, op)
	}

	return &opdomain.ListOperationsResult{
		Operations:    operations,
		NextPageToken: nextToken,
	}, nil
}

func (r *Repository) DeleteOperation(ctx context.Context, args *opdomain.DeleteOperationArgs) error {
	if args == nil || args.Name == "" {
		return opdomain.ErrInvalidArgument
	}

	if _, _, err := r.getEntry(ctx, args.Name); err != nil {
		return err
	}

	return r.kv.Delete(ctx, args.Name.String())
}

func (r *Repository) CompleteOperation(ctx context.Context, args *opdomain.CompleteOperationArgs) (*opdomain.CompleteOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, opdomain.ErrInvalidArgument
	}
	if (args.Response == nil) == (args.Error == nil) {
		return nil, fmt.Errorf("%w: exactly one of response or error must be set", opdomain.ErrInvalidArgument)
	}

	entry, op, err := r.getEntry(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	if op.GetDone() {
		return nil, fmt.Errorf("%w: %s", opdomain.ErrOperationCompleted, args.Name)
	}

	op.Done = true
	if args.Error != nil {
		op.Result = &longrunning.Operation_Error{Error: args.Error}
	} else {
		op.Result = &longrunning.Operation_Response{Response: args.Response}
	}

	b, err := protojson.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("marshal operation %s: %w", args.Name, err)
	}

	if _, err := r.kv.Update(ctx, args.Name.String(), b, entry.Revision()); err != nil {
		// someone completed it first
		return nil, fmt.Errorf("%w: %s", opdomain.ErrOperationCompleted, args.Name)
	}

	return &opdomain.CompleteOperationResult{Operation: op}, nil
}

func (r *Repository) getEntry(ctx context.Context, name opdomain.OperationName) (jetstream.KeyValueEntry, *longrunning.Operation, error) {
	entry, err := r.kv.Get(ctx, name.String())
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", opdomain.ErrOperationNotFound, name)
		}
		return nil, nil, err
	}

	var op longrunning.Operation
	if err := protojson.Unmarshal(entry.Value(), &op); err != nil {
		return nil, nil, fmt.Errorf("unmarshal operation %s: %w", name, err)
	}

	return entry, &op, nil
}

func filterPredicate(filter string) (func(*longrunning.Operation) bool, error) {
	switch filter {
	case "":
		return func(*longrunning.Operation) bool { return true }, nil
	case "done":
		return func(op *longrunning.Operation) bool { return op.GetDone() }, nil
	case "running":
		return func(op *longrunning.Operation) bool { return !op.GetDone() }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported filter %q", opdomain.ErrInvalidArgument, filter)
	}
}

func encodeToken(lastKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(lastKey))
}

func startIndex(keys []string, token string) (int, error) {
	if token == "" {
		return 0, nil
	}

	lastKey, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed page token", opdomain.ErrInvalidArgument)
	}

	return sort.SearchStrings(keys, string(lastKey)+"\x00"), nil
}
