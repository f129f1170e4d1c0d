package snaprepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	"github.com/minio/minio-go/v7"
)

// Repository writes cluster export snapshots to object storage.
type Repository struct {
	client *minio.Client
	bucket string
}

func NewRepository(ctx context.Context, client *minio.Client, bucket string) (*Repository, error) {
	if client == nil {
		return nil, errors.New("object storage client is required")
	}
	if bucket == "" {
		return nil, errors.New("bucket is empty")
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}

	return &Repository{client: client, bucket: bucket}, nil
}

// PutSnapshot uploads the cluster's JSON snapshot and returns the object key.
func (r *Repository) PutSnapshot(ctx context.Context, cluster *clusterdomain.Cluster) (string, error) {
	if cluster == nil || cluster.Name == "" {
		return "", clusterdomain.ErrInvalidArgument
	}

	b, err := json.Marshal(cluster)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot of %s: %w", cluster.Name, err)
	}

	key := fmt.Sprintf("%s/snapshot-%s.json", cluster.Name, time.Now().UTC().Format("20060102T150405Z"))

	_, err = r.client.PutObject(ctx, r.bucket, key, bytes.NewReader(b), int64(len(b)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot %s: %w", key, err)
	}

	return key, nil
}
