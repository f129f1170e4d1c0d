package clusterdomain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const namePrefix = "clusters/"

// ClusterName is a resource name of the form "clusters/{id}".
type ClusterName string

func ParseClusterName(s string) (ClusterName, error) {
	id, ok := strings.CutPrefix(s, namePrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidClusterName, s)
	}
	return ClusterName(s), nil
}

func (n ClusterName) String() string { return string(n) }

func NameFromID(id string) ClusterName {
	return ClusterName(namePrefix + id)
}

type ClusterState string

const (
	ClusterStateProvisioning ClusterState = "PROVISIONING"
	ClusterStateRunning      ClusterState = "RUNNING"
	ClusterStateDeleting     ClusterState = "DELETING"
	ClusterStateDeleted      ClusterState = "DELETED"
	ClusterStateError        ClusterState = "ERROR"
)

// terminal states accept no further mutations
func (s ClusterState) Terminal() bool {
	return s == ClusterStateDeleted || s == ClusterStateError
}

type Cluster struct {
	Name        ClusterName  `json:"name"`
	DisplayName string       `json:"display_name"`
	NodeCount   int32        `json:"node_count"`
	State       ClusterState `json:"state"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToAny packs the cluster into an Any suitable for an operation's response
// payload. The waiter and the operations store treat it as opaque.
func (c *Cluster) ToAny() (*anypb.Any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("pack cluster %s: %w", c.Name, err)
	}
	return anypb.New(s)
}

// ClusterFromAny is the inverse of ToAny.
func ClusterFromAny(payload *anypb.Any) (*Cluster, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidArgument)
	}

	var s structpb.Struct
	if err := payload.UnmarshalTo(&s); err != nil {
		return nil, fmt.Errorf("unpack cluster payload: %w", err)
	}

	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var c Cluster
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
