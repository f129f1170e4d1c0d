package opdomain

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const namePrefix = "operations/"

// OperationName is a resource name of the form "operations/{id}".
type OperationName string

func ParseOperationName(s string) (OperationName, error) {
	id, ok := strings.CutPrefix(s, namePrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperationName, s)
	}
	return OperationName(s), nil
}

func (n OperationName) String() string { return string(n) }

// NameFromID builds the resource name for a freshly minted operation id.
func NameFromID(id string) OperationName {
	return OperationName(namePrefix + id)
}

// NewMetadata packs the standard operation metadata (what resource is acted
// on and how) into an Any for the Operation.Metadata field.
func NewMetadata(target, verb string) (*anypb.Any, error) {
	meta, err := structpb.NewStruct(map[string]any{
		"target": target,
		"verb":   verb,
	})
	if err != nil {
		return nil, fmt.Errorf("build operation metadata: %w", err)
	}
	return anypb.New(meta)
}
