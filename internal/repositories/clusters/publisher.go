package clusterrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	SubjectProvision = "clusters.provision"
	SubjectTeardown  = "clusters.teardown"
	SubjectExport    = "clusters.export"

	WorkStream = "CLUSTER_WORK"
)

//go:generate go tool mockery
type Stream interface {
	Stream(ctx context.Context, stream string) (jetstream.Stream, error)
	CreateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Publisher enqueues cluster work for the agent.
type Publisher struct {
	js Stream
}

func NewPublisher(js Stream) *Publisher {
	return &Publisher{js: js}
}

func (p *Publisher) ensureWorkStream(ctx context.Context) error {
	_, err := p.js.Stream(ctx, WorkStream)
	if err == nil {
		return nil
	}
	if !errors.Is(err, jetstream.ErrStreamNotFound) {
		return fmt.Errorf("get stream %s: %w", WorkStream, err)
	}

	_, err = p.js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     WorkStream,
		Subjects: []string{SubjectProvision, SubjectTeardown, SubjectExport},
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", WorkStream, err)
	}
	return nil
}

func (p *Publisher) PublishProvision(ctx context.Context, msg *clusterdomain.ProvisionClusterMessage) error {
	if msg == nil || msg.ClusterName == "" || msg.OperationName == "" {
		return clusterdomain.ErrInvalidArgument
	}
	return p.publish(ctx, SubjectProvision, msg)
}

func (p *Publisher) PublishTeardown(ctx context.Context, msg *clusterdomain.TeardownClusterMessage) error {
	if msg == nil || msg.ClusterName == "" || msg.OperationName == "" {
		return clusterdomain.ErrInvalidArgument
	}
	return p.publish(ctx, SubjectTeardown, msg)
}

func (p *Publisher) PublishExport(ctx context.Context, msg *clusterdomain.ExportClusterMessage) error {
	if msg == nil || msg.ClusterName == "" || msg.OperationName == "" {
		return clusterdomain.ErrInvalidArgument
	}
	return p.publish(ctx, SubjectExport, msg)
}

func (p *Publisher) publish(ctx context.Context, subject string, msg any) error {
	if err := p.ensureWorkStream(ctx); err != nil {
		return err
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s message: %w", subject, err)
	}

	if _, err := p.js.Publish(ctx, subject, b); err != nil {
		return fmt.Errorf("jetstream publish %s: %w", subject, err)
	}
	return nil
}
