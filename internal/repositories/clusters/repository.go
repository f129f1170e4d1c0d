package clusterrepo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// Repository keeps clusters in a JetStream key-value bucket, one JSON
// document per cluster, keyed by resource name.
type Repository struct {
	kv jetstream.KeyValue
}

func NewRepository(kv jetstream.KeyValue) (*Repository, error) {
	if kv == nil {
		return nil, errors.New("key-value bucket is required")
	}
	return &Repository{kv: kv}, nil
}

func (r *Repository) CreateCluster(ctx context.Context, cluster *clusterdomain.Cluster) error {
	if cluster == nil || cluster.Name == "" {
		return clusterdomain.ErrInvalidArgument
	}

	b, err := json.Marshal(cluster)
	if err != nil {
		return fmt.Errorf("marshal cluster %s: %w", cluster.Name, err)
	}

	if _, err := r.kv.Create(ctx, cluster.Name.String(), b); err != nil {
		if errors.Is(err, jetstream.ErrKeyExists) {
			return fmt.Errorf("%w: %s", clusterdomain.ErrClusterAlreadyExists, cluster.Name)
		}
		return err
	}
	return nil
}

func (r *Repository) GetCluster(ctx context.Context, name clusterdomain.ClusterName) (*clusterdomain.Cluster, error) {
	if name == "" {
		return nil, clusterdomain.ErrInvalidArgument
	}

	_, cluster, err := r.getEntry(ctx, name)
	return cluster, err
}

func (r *Repository) ListClusters(ctx context.Context, pageSize int32, pageToken string) ([]*clusterdomain.Cluster, string, error) {
	size := int(pageSize)
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	lister, err := r.kv.ListKeys(ctx)
	if err != nil {
		return nil, "", err
	}

	keys := make([]string, 0, 128)
	for k := range lister.Keys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start, err := startIndex(keys, pageToken)
	if err != nil {
		return nil, "", err
	}

	clusters := make([]*clusterdomain.Cluster, 0, size)
	nextToken := ""
	for _, key := range keys[start:] {
		if len(clusters) == size {
			nextToken = encodeToken(clusters[len(clusters)-1].Name.String())
			break
		}

		_, cluster, err := r.getEntry(ctx, clusterdomain.ClusterName(key))
		if err != nil {
			if errors.Is(err, clusterdomain.ErrClusterNotFound) {
				continue
			}
			return nil, "", err
		}
		clusters = append(clusters, cluster)
	}

	return clusters, nextToken, nil
}

// UpdateClusterState transitions a cluster between states with optimistic
// concurrency. The from state guards against racing mutations; pass the
// cluster's current state as observed by the caller.
func (r *Repository) UpdateClusterState(ctx context.Context, name clusterdomain.ClusterName, from, to clusterdomain.ClusterState) (*clusterdomain.Cluster, error) {
	if name == "" {
		return nil, clusterdomain.ErrInvalidArgument
	}

	entry, cluster, err := r.getEntry(ctx, name)
	if err != nil {
		return nil, err
	}

	if cluster.State != from {
		return nil, fmt.Errorf("%w: %s is %s, expected %s", clusterdomain.ErrStateConflict, name, cluster.State, from)
	}

	cluster.State = to
	cluster.UpdatedAt = time.Now().UTC()

	b, err := json.Marshal(cluster)
	if err != nil {
		return nil, fmt.Errorf("marshal cluster %s: %w", name, err)
	}

	if _, err := r.kv.Update(ctx, name.String(), b, entry.Revision()); err != nil {
		return nil, fmt.Errorf("%w: %s", clusterdomain.ErrStateConflict, name)
	}
	return cluster, nil
}

func (r *Repository) DeleteCluster(ctx context.Context, name clusterdomain.ClusterName) error {
	if name == "" {
		return clusterdomain.ErrInvalidArgument
	}

	if _, _, err := r.getEntry(ctx, name); err != nil {
		return err
	}
	return r.kv.Delete(ctx, name.String())
}

func (r *Repository) getEntry(ctx context.Context, name clusterdomain.ClusterName) (jetstream.KeyValueEntry, *clusterdomain.Cluster, error) {
	entry, err := r.kv.Get(ctx, name.String())
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", clusterdomain.ErrClusterNotFound, name)
		}
		return nil, nil, err
	}

	var cluster clusterdomain.Cluster
	if err := json.Unmarshal(entry.Value(), &cluster); err != nil {
		return nil, nil, fmt.Errorf("unmarshal cluster %s: %w", name, err)
	}

	return entry, &cluster, nil
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
		return 0, fmt.Errorf("%w: malformed page token", clusterdomain.ErrInvalidArgument)
	}

	return sort.SearchStrings(keys, string(lastKey)+"\x00"), nil
}
