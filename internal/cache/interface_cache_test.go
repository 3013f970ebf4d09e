package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lukso-network/lukso-indexer-api/internal/cache"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/metrics"
	"github.com/lukso-network/lukso-indexer-api/internal/mocks"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	goleak.VerifyTestMain(m)
}

type testCacheMocks struct {
	ctrl    *gomock.Controller
	clock   *mocks.MockClock
	metrics *metrics.Metrics
	cache   *cache.InterfaceCache
}

func setupTest(t *testing.T) *testCacheMocks {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	m := metrics.New()

	return &testCacheMocks{
		ctrl:    ctrl,
		clock:   clock,
		metrics: m,
		cache:   cache.NewInterfaceCache(10*time.Minute, clock, m),
	}
}

func lsp0() schema.ContractInterface {
	version := "0.6"
	return schema.ContractInterface{ID: "0x9a3bfe88", Code: "LSP0", Name: "ERC725Account", Version: &version}
}

func lsp7() schema.ContractInterface {
	version := "0.12"
	return schema.ContractInterface{ID: "0xdaa746b7", Code: "LSP7", Name: "Digital Asset", Version: &version}
}

func staticLoader(calls *atomic.Int32, rows ...schema.ContractInterface) cache.Loader {
	return func(ctx context.Context) ([]schema.ContractInterface, error) {
		calls.Add(1)
		return rows, nil
	}
}

func TestInterfaceCache_All_LoadsWhenEmpty(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Minute)

	var calls atomic.Int32
	load := staticLoader(&calls, lsp0(), lsp7())

	first, err := tm.cache.All(context.Background(), load)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := tm.cache.All(context.Background(), load)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, uint64(1), tm.metrics.CacheRefreshes.Load())
}

func TestInterfaceCache_All_ReloadsAfterTTL(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	loadedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reloadedAt := loadedAt.Add(11 * time.Minute)

	gomock.InOrder(
		tm.clock.EXPECT().Now().Return(loadedAt),
		tm.clock.EXPECT().Since(loadedAt).Return(11*time.Minute).Times(2),
		tm.clock.EXPECT().Now().Return(reloadedAt),
	)

	var calls atomic.Int32
	rows := []schema.ContractInterface{lsp0()}
	load := func(ctx context.Context) ([]schema.ContractInterface, error) {
		calls.Add(1)
		return rows, nil
	}

	_, err := tm.cache.All(context.Background(), load)
	require.NoError(t, err)

	rows = append(rows, lsp7())
	result, err := tm.cache.All(context.Background(), load)
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestInterfaceCache_All_LoadFailureKeepsCache(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).Times(2)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Minute).AnyTimes()

	loadErr := errors.New("connection refused")
	failing := func(ctx context.Context) ([]schema.ContractInterface, error) {
		return nil, loadErr
	}

	result, err := tm.cache.All(context.Background(), failing)
	assert.ErrorIs(t, err, loadErr)
	assert.Nil(t, result)
	assert.Equal(t, 0, tm.cache.Len())
	assert.Equal(t, uint64(0), tm.metrics.CacheRefreshes.Load())

	// a failed reload is retried on the next call
	var calls atomic.Int32
	result, err = tm.cache.All(context.Background(), staticLoader(&calls, lsp0()))
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestInterfaceCache_All_ReturnsCopy(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()

	var calls atomic.Int32
	result, err := tm.cache.All(context.Background(), staticLoader(&calls, lsp0()))
	require.NoError(t, err)

	result[0].Code = "mutated"

	again, err := tm.cache.All(context.Background(), staticLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, "LSP0", again[0].Code)

	found, ok := tm.cache.Find("0x9a3bfe88")
	require.True(t, ok)
	found.Code = "mutated"

	found, ok = tm.cache.Find("0x9a3bfe88")
	require.True(t, ok)
	assert.Equal(t, "LSP0", found.Code)
}

func TestInterfaceCache_Find(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	_, ok := tm.cache.Find("0x9a3bfe88")
	assert.False(t, ok)

	tm.cache.Append(lsp0())

	found, ok := tm.cache.Find("0x9a3bfe88")
	require.True(t, ok)
	assert.Equal(t, "ERC725Account", found.Name)

	_, ok = tm.cache.Find("0xdaa746b7")
	assert.False(t, ok)

	assert.Equal(t, uint64(1), tm.metrics.CacheHits.Load())
	assert.Equal(t, uint64(2), tm.metrics.CacheMisses.Load())
}

func TestInterfaceCache_AppendVisibleWithoutReload(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Minute).AnyTimes()

	var calls atomic.Int32
	_, err := tm.cache.All(context.Background(), staticLoader(&calls, lsp0()))
	require.NoError(t, err)

	tm.cache.Append(lsp7())

	result, err := tm.cache.All(context.Background(), staticLoader(&calls))
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int32(1), calls.Load())
}

func TestInterfaceCache_AppendDuringReloadIsKept(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.clock.EXPECT().Since(now).Return(time.Minute).AnyTimes()

	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) ([]schema.ContractInterface, error) {
		close(started)
		<-release
		// the snapshot already holds lsp0 and misses lsp7
		return []schema.ContractInterface{lsp0()}, nil
	}

	type allResult struct {
		rows []schema.ContractInterface
		err  error
	}
	done := make(chan allResult, 1)
	go func() {
		rows, err := tm.cache.All(context.Background(), load)
		done <- allResult{rows: rows, err: err}
	}()

	<-started
	tm.cache.Append(lsp0())
	tm.cache.Append(lsp7())
	close(release)

	res := <-done
	require.NoError(t, res.err)
	assert.ElementsMatch(t, []schema.ContractInterface{lsp0(), lsp7()}, res.rows)

	var calls atomic.Int32
	result, err := tm.cache.All(context.Background(), staticLoader(&calls))
	require.NoError(t, err)
	assert.ElementsMatch(t, []schema.ContractInterface{lsp0(), lsp7()}, result)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 2, tm.cache.Len())
}

func TestInterfaceCache_Invalidate(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).Times(2)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Minute).AnyTimes()

	var calls atomic.Int32
	load := staticLoader(&calls, lsp0())

	_, err := tm.cache.All(context.Background(), load)
	require.NoError(t, err)

	tm.cache.Invalidate()
	assert.Equal(t, 0, tm.cache.Len())

	_, err = tm.cache.All(context.Background(), load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestInterfaceCache_All_ConcurrentReadersLoadOnce(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	var calls atomic.Int32
	load := func(ctx context.Context) ([]schema.ContractInterface, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []schema.ContractInterface{lsp0(), lsp7()}, nil
	}

	const readers = 16
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := tm.cache.All(context.Background(), load)
			if err == nil && len(result) != 2 {
				err = errors.New("unexpected result size")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewInterfaceCache_Defaults(t *testing.T) {
	c := cache.NewInterfaceCache(0, nil, nil)

	var calls atomic.Int32
	result, err := c.All(context.Background(), staticLoader(&calls, lsp0()))
	require.NoError(t, err)
	assert.Len(t, result, 1)

	// nil metrics must not panic
	_, ok := c.Find("0x9a3bfe88")
	assert.True(t, ok)
}
