package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	clusterrepo "github.com/10Narratives/nimbus/internal/repositories/clusters"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	operationsBucket = "operations"
	clustersBucket   = "clusters"
)

func NewConnection(dsn string) (*nats.Conn, error) {
	nc, err := nats.Connect(dsn)
	if err != nil {
		return nil, err
	}

	if err := nc.FlushTimeout(1 * time.Second); err != nil {
		return nil, errors.New("not connected")
	}

	return nc, nil
}

// UnifiedStorage bundles the platform's JetStream resources: the work stream
// plus the operation and cluster metadata buckets.
type UnifiedStorage struct {
	Conn          *nats.Conn
	JS            jetstream.JetStream
	WorkStream    jetstream.Stream
	OperationMeta jetstream.KeyValue
	ClusterMeta   jetstream.KeyValue
}

func NewUnifiedStorage(url string) (*UnifiedStorage, error) {
	conn, err := NewConnection(url)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("create jetstream: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	workStream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name: clusterrepo.WorkStream,
		Subjects: []string{
			clusterrepo.SubjectProvision,
			clusterrepo.SubjectTeardown,
			clusterrepo.SubjectExport,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ensure stream %s: %w", clusterrepo.WorkStream, err)
	}

	operationMeta, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: operationsBucket})
	if err != nil {
		return nil, fmt.Errorf("ensure kv %s: %w", operationsBucket, err)
	}

	clusterMeta, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: clustersBucket})
	if err != nil {
		return nil, fmt.Errorf("ensure kv %s: %w", clustersBucket, err)
	}

	return &UnifiedStorage{
		Conn:          conn,
		JS:            js,
		WorkStream:    workStream,
		OperationMeta: operationMeta,
		ClusterMeta:   clusterMeta,
	}, nil
}
