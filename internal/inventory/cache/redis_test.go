package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockwatch/internal/inventory/stock"
)

func TestKey(t *testing.T) {
	day := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	q := stock.Query{Search: "tepung", Status: stock.FilterAll, Sort: stock.SortStockAsc}

	key := Key(q, day)
	assert.True(t, strings.HasPrefix(key, keyPrefix))
	assert.Len(t, strings.TrimPrefix(key, keyPrefix), 64)

	t.Run("same day same key", func(t *testing.T) {
		later := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, key, Key(q, later))
	})

	t.Run("next day differs", func(t *testing.T) {
		assert.NotEqual(t, key, Key(q, day.AddDate(0, 0, 1)))
	})

	t.Run("query fields differ", func(t *testing.T) {
		assert.NotEqual(t, key, Key(stock.Query{Search: "gula", Status: stock.FilterAll, Sort: stock.SortStockAsc}, day))
		assert.NotEqual(t, key, Key(stock.Query{Search: "tepung", Status: stock.StatusFilter(stock.StatusUrgent), Sort: stock.SortStockAsc}, day))
		assert.NotEqual(t, key, Key(stock.Query{Search: "tepung", Status: stock.FilterAll, Sort: stock.SortDefault}, day))
	})
}

func TestNewListCache_DefaultTTL(t *testing.T) {
	c := NewListCache(nil, 0)
	assert.Equal(t, defaultTTL, c.ttl)

	c = NewListCache(nil, 5*time.Minute)
	assert.Equal(t, 5*time.Minute, c.ttl)
}

type scanPage struct {
	keys []string
	next uint64
}

// fakeRedis serves a fixed SCAN cursor chain and an in-memory key space.
// Commands it does not override panic through the nil embedded Cmdable.
type fakeRedis struct {
	redis.Cmdable

	pages   map[uint64]scanPage
	values  map[string]string
	ttls    map[string]time.Duration
	cursors []uint64
	matches []string
	deleted [][]string
	scanErr error
	delErr  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		pages:  map[uint64]scanPage{},
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.values[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Scan(_ context.Context, cursor uint64, match string, _ int64) *redis.ScanCmd {
	f.cursors = append(f.cursors, cursor)
	f.matches = append(f.matches, match)
	if f.scanErr != nil {
		return redis.NewScanCmdResult(nil, 0, f.scanErr)
	}
	page := f.pages[cursor]
	return redis.NewScanCmdResult(page.keys, page.next, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, append([]string(nil), keys...))
	if f.delErr != nil {
		return redis.NewIntResult(0, f.delErr)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestListCache_GetSet(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	c := NewListCache(client, 30*time.Second)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"success":true}`)))
	assert.Equal(t, 30*time.Second, client.ttls["k"])

	payload, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"success":true}`, string(payload))
}

func TestListCache_InvalidateFollowsCursor(t *testing.T) {
	client := newFakeRedis()
	client.pages[0] = scanPage{keys: []string{keyPrefix + "a", keyPrefix + "b"}, next: 17}
	client.pages[17] = scanPage{keys: nil, next: 42}
	client.pages[42] = scanPage{keys: []string{keyPrefix + "c"}, next: 0}

	require.NoError(t, NewListCache(client, 0).Invalidate(context.Background()))

	assert.Equal(t, []uint64{0, 17, 42}, client.cursors)
	for _, m := range client.matches {
		assert.Equal(t, keyPrefix+"*", m)
	}
	assert.Equal(t, [][]string{
		{keyPrefix + "a", keyPrefix + "b"},
		{keyPrefix + "c"},
	}, client.deleted, "empty pages issue no DEL")
}

func TestListCache_InvalidateEmpty(t *testing.T) {
	client := newFakeRedis()

	require.NoError(t, NewListCache(client, 0).Invalidate(context.Background()))
	assert.Equal(t, []uint64{0}, client.cursors)
	assert.Empty(t, client.deleted)
}

func TestListCache_InvalidateErrors(t *testing.T) {
	t.Run("scan", func(t *testing.T) {
		client := newFakeRedis()
		client.scanErr = errors.New("connection refused")

		err := NewListCache(client, 0).Invalidate(context.Background())
		assert.ErrorIs(t, err, client.scanErr)
		assert.Empty(t, client.deleted)
	})

	t.Run("del stops the scan", func(t *testing.T) {
		client := newFakeRedis()
		client.pages[0] = scanPage{keys: []string{keyPrefix + "a"}, next: 5}
		client.pages[5] = scanPage{keys: []string{keyPrefix + "b"}, next: 0}
		client.delErr = errors.New("READONLY")

		err := NewListCache(client, 0).Invalidate(context.Background())
		assert.ErrorIs(t, err, client.delErr)
		assert.Equal(t, []uint64{0}, client.cursors)
	})
}
