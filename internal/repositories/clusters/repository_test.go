package clusterrepo

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	clusterdomain "github.com/10Narratives/nimbus/internal/domains/clusters"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

type fakeEntry struct {
	bucket  string
	key     string
	val     []byte
	rev     uint64
	created time.Time
	delta   uint64
	op      jetstream.KeyValueOp
}

func (e *fakeEntry) Bucket() string                  { return e.bucket }
func (e *fakeEntry) Key() string                     { return e.key }
func (e *fakeEntry) Value() []byte                   { return e.val }
func (e *fakeEntry) Revision() uint64                { return e.rev }
func (e *fakeEntry) Created() time.Time              { return e.created }
func (e *fakeEntry) Delta() uint64                   { return e.delta }
func (e *fakeEntry) Operation() jetstream.KeyValueOp { return e.op }

type fakeLister struct {
	ch chan string
}

func (l *fakeLister) Keys() <-chan string { return l.ch }
func (l *fakeLister) Stop() error         { return nil }

type fakeKV struct {
	bucket string

	// hooks
	createErr error
	updateErr error
	deleteErr error
	getErr    error
	listErr   error

	// storage
	nextRev uint64
	items   map[string]*fakeEntry
}

func newFakeKV(bucket string) *fakeKV {
	return &fakeKV{
		bucket:  bucket,
		nextRev: 1,
		items:   map[string]*fakeEntry{},
	}
}

// --- methods actually used by repository ---

func (kv *fakeKV) Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error) {
	if kv.getErr != nil {
		return nil, kv.getErr
	}
	e, ok := kv.items[key]
	if !ok {
		return nil, jetstream.ErrKeyNotFound
	}
	return e, nil
}

func (kv *fakeKV) Create(ctx context.Context, key string, value []byte) (uint64, error) {
	if kv.createErr != nil {
		return 0, kv.createErr
	}
	if _, ok := kv.items[key]; ok {
		return 0, jetstream.ErrKeyExists
	}
	rev := kv.nextRev
	kv.nextRev++

	kv.items[key] = &fakeEntry{
		bucket:  kv.bucket,
		key:     key,
		val:     append([]byte(nil), value...),
		rev:     rev,
		created: time.Now().UTC(),
		op:      jetstream.KeyValuePut,
	}
	return rev, nil
}

func (kv *fakeKV) Update(ctx context.Context, key string, value []byte, revision uint64) (uint64, error) {
	if kv.updateErr != nil {
		return 0, kv.updateErr
	}
	e, ok := kv.items[key]
	if !ok {
		return 0, jetstream.ErrKeyNotFound
	}
	if e.rev != revision {
		return 0, errors.New("wrong revision")
	}

	rev := kv.nextRev
	kv.nextRev++

	e.val = append([]byte(nil), value...)
	e.rev = rev
	e.created = time.Now().UTC()
	e.op = jetstream.KeyValuePut
	return rev, nil
}

func (kv *fakeKV) Delete(ctx context.Context, key string, _ ...jetstream.KVDeleteOpt) error {
	if kv.deleteErr != nil {
		return kv.deleteErr
	}
	if _, ok := kv.items[key]; !ok {
		return jetstream.ErrKeyNotFound
	}
	delete(kv.items, key)
	return nil
}

func (kv *fakeKV) ListKeys(ctx context.Context, _ ...jetstream.WatchOpt) (jetstream.KeyLister, error) {
	if kv.listErr != nil {
		return nil, kv.listErr
	}

	keys := make([]string, 0, len(kv.items))
	for k := range kv.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ch := make(chan string, len(keys))
	for _, k := range keys {
		ch <- k
	}
	close(ch)

	return &fakeLister{ch: ch}, nil
}

// --- stubs to satisfy jetstream.KeyValue interface ---

func (kv *fakeKV) GetRevision(ctx context.Context, key string, revision uint64) (jetstream.KeyValueEntry, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) Put(ctx context.Context, key string, value []byte) (uint64, error) {
	return 0, errors.New("not implemented")
}
func (kv *fakeKV) PutString(ctx context.Context, key string, value string) (uint64, error) {
	return 0, errors.New("not implemented")
}
func (kv *fakeKV) Purge(ctx context.Context, key string, opts ...jetstream.KVDeleteOpt) error {
	return errors.New("not implemented")
}
func (kv *fakeKV) Watch(ctx context.Context, keys string, opts ...jetstream.WatchOpt) (jetstream.KeyWatcher, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) WatchAll(ctx context.Context, opts ...jetstream.WatchOpt) (jetstream.KeyWatcher, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) WatchFiltered(ctx context.Context, keys []string, opts ...jetstream.WatchOpt) (jetstream.KeyWatcher, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) Keys(ctx context.Context, opts ...jetstream.WatchOpt) ([]string, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) ListKeysFiltered(ctx context.Context, filters ...string) (jetstream.KeyLister, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) History(ctx context.Context, key string, opts ...jetstream.WatchOpt) ([]jetstream.KeyValueEntry, error) {
	return nil, errors.New("not implemented")
}
func (kv *fakeKV) Bucket() string { return kv.bucket }
func (kv *fakeKV) PurgeDeletes(ctx context.Context, opts ...jetstream.KVPurgeOpt) error {
	return errors.New("not implemented")
}
func (kv *fakeKV) Status(ctx context.Context) (jetstream.KeyValueStatus, error) {
	return nil, errors.New("not implemented")
}

// -------------------- helpers --------------------

func storeCluster(t *testing.T, kv *fakeKV, name string, state clusterdomain.ClusterState) {
	t.Helper()

	c := &clusterdomain.Cluster{
		Name:        clusterdomain.ClusterName(name),
		DisplayName: "test",
		NodeCount:   3,
		State:       state,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	_, err = kv.Create(context.Background(), name, b)
	require.NoError(t, err)
}

// -------------------- tests --------------------

func TestRepository_CreateCluster(t *testing.T) {
	t.Parallel()

	t.Run("nil cluster -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		r := &Repository{kv: newFakeKV("b")}
		err := r.CreateCluster(context.Background(), nil)
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
	})

	t.Run("key exists -> ErrClusterAlreadyExists", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		kv.createErr = jetstream.ErrKeyExists
		r := &Repository{kv: kv}

		err := r.CreateCluster(context.Background(), &clusterdomain.Cluster{Name: "clusters/1"})
		require.ErrorIs(t, err, clusterdomain.ErrClusterAlreadyExists)
	})

	t.Run("ok -> stores JSON keyed by name", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		r := &Repository{kv: kv}

		c := &clusterdomain.Cluster{
			Name:        "clusters/1",
			DisplayName: "primary",
			NodeCount:   5,
			State:       clusterdomain.ClusterStateProvisioning,
		}
		require.NoError(t, r.CreateCluster(context.Background(), c))

		entry := kv.items["clusters/1"]
		require.NotNil(t, entry)

		var stored clusterdomain.Cluster
		require.NoError(t, json.Unmarshal(entry.val, &stored))
		require.Equal(t, c.Name, stored.Name)
		require.Equal(t, "primary", stored.DisplayName)
		require.Equal(t, int32(5), stored.NodeCount)
		require.Equal(t, clusterdomain.ClusterStateProvisioning, stored.State)
	})
}

func TestRepository_GetCluster(t *testing.T) {
	t.Parallel()

	t.Run("empty name -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		r := &Repository{kv: newFakeKV("b")}
		_, err := r.GetCluster(context.Background(), "")
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
	})

	t.Run("not found -> ErrClusterNotFound", func(t *testing.T) {
		t.Parallel()

		r := &Repository{kv: newFakeKV("b")}
		_, err := r.GetCluster(context.Background(), "clusters/404")
		require.ErrorIs(t, err, clusterdomain.ErrClusterNotFound)
	})

	t.Run("ok -> returns stored cluster", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		storeCluster(t, kv, "clusters/1", clusterdomain.ClusterStateRunning)
		r := &Repository{kv: kv}

		c, err := r.GetCluster(context.Background(), "clusters/1")
		require.NoError(t, err)
		require.Equal(t, clusterdomain.ClusterName("clusters/1"), c.Name)
		require.Equal(t, clusterdomain.ClusterStateRunning, c.State)
	})
}

func TestRepository_ListClusters(t *testing.T) {
	t.Parallel()

	t.Run("malformed page token -> ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()

		r := &Repository{kv: newFakeKV("b")}
		_, _, err := r.ListClusters(context.Background(), 10, "???")
		require.ErrorIs(t, err, clusterdomain.ErrInvalidArgument)
	})

	t.Run("pages are stable and resumable", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		storeCluster(t, kv, "clusters/a", clusterdomain.ClusterStateRunning)
		storeCluster(t, kv, "clusters/b", clusterdomain.ClusterStateRunning)
		storeCluster(t, kv, "clusters/c", clusterdomain.ClusterStateRunning)
		r := &Repository{kv: kv}

		first, token, err := r.ListClusters(context.Background(), 2, "")
		require.NoError(t, err)
		require.Len(t, first, 2)
		require.Equal(t, clusterdomain.ClusterName("clusters/a"), first[0].Name)
		require.Equal(t, clusterdomain.ClusterName("clusters/b"), first[1].Name)
		require.NotEmpty(t, token)

		second, token, err := r.ListClusters(context.Background(), 2, token)
		require.NoError(t, err)
		require.Len(t, second, 1)
		require.Equal(t, clusterdomain.ClusterName("clusters/c"), second[0].Name)
		require.Empty(t, token)
	})
}

func TestRepository_UpdateClusterState(t *testing.T) {
	t.Parallel()

	t.Run("not found -> ErrClusterNotFound", func(t *testing.T) {
		t.Parallel()

		r := &Repository{kv: newFakeKV("b")}
		_, err := r.UpdateClusterState(context.Background(), "clusters/404",
			clusterdomain.ClusterStateProvisioning, clusterdomain.ClusterStateRunning)
		require.ErrorIs(t, err, clusterdomain.ErrClusterNotFound)
	})

	t.Run("state mismatch -> ErrStateConflict", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		storeCluster(t, kv, "clusters/1", clusterdomain.ClusterStateRunning)
		r := &Repository{kv: kv}

		_, err := r.UpdateClusterState(context.Background(), "clusters/1",
			clusterdomain.ClusterStateProvisioning, clusterdomain.ClusterStateRunning)
		require.ErrorIs(t, err, clusterdomain.ErrStateConflict)
	})

	t.Run("revision conflict -> ErrStateConflict", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		storeCluster(t, kv, "clusters/1", clusterdomain.ClusterStateProvisioning)
		kv.updateErr = errors.New("wrong revision")
		r := &Repository{kv: kv}

		_, err := r.UpdateClusterState(context.Background(), "clusters/1",
			clusterdomain.ClusterStateProvisioning, clusterdomain.ClusterStateRunning)
		require.ErrorIs(t, err, clusterdomain.ErrStateConflict)
	})

	t.Run("ok -> new state persisted with fresh updated_at", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		storeCluster(t, kv, "clusters/1", clusterdomain.ClusterStateProvisioning)
		r := &Repository{kv: kv}

		c, err := r.UpdateClusterState(context.Background(), "clusters/1",
			clusterdomain.ClusterStateProvisioning, clusterdomain.ClusterStateRunning)
		require.NoError(t, err)
		require.Equal(t, clusterdomain.ClusterStateRunning, c.State)

		var stored clusterdomain.Cluster
		require.NoError(t, json.Unmarshal(kv.items["clusters/1"].val, &stored))
		require.Equal(t, clusterdomain.ClusterStateRunning, stored.State)
	})
}

func TestRepository_DeleteCluster(t *testing.T) {
	t.Parallel()

	t.Run("not found -> ErrClusterNotFound", func(t *testing.T) {
		t.Parallel()

		r := &Repository{kv: newFakeKV("b")}
		err := r.DeleteCluster(context.Background(), "clusters/404")
		require.ErrorIs(t, err, clusterdomain.ErrClusterNotFound)
	})

	t.Run("ok -> removes the record", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV("b")
		storeCluster(t, kv, "clusters/1", clusterdomain.ClusterStateDeleted)
		r := &Repository{kv: kv}

		require.NoError(t, r.DeleteCluster(context.Background(), "clusters/1"))
		require.Empty(t, kv.items)
	})
}
