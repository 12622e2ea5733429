package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/points-backend/internal/models"
	"github.com/baharkarakas/points-backend/internal/repository/memory"
	"github.com/baharkarakas/points-backend/internal/services"
)

func newInMemory(opts ...services.Option) *services.PointService {
	opts = append([]services.Option{services.WithLogger(quiet)}, opts...)
	return services.NewPointService(memory.NewUserPoints(), memory.NewPointHistories(), opts...)
}

func TestConcurrentChargesAcrossTwoUsers(t *testing.T) {
	ctx := context.Background()
	svc := newInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Charge(ctx, int64(i%2+1), 10)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for _, id := range []int64{1, 2} {
		up, err := svc.GetPoint(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), up.Point)

		hs, err := svc.GetHistories(ctx, id)
		require.NoError(t, err)
		assert.Len(t, hs, 250)
	}
}

func TestConcurrentUsesDrainBalance(t *testing.T) {
	ctx := context.Background()
	svc := newInMemory()
	_, err := svc.Charge(ctx, 1, 500)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Use(ctx, 1, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	up, err := svc.GetPoint(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, up.Point)

	hs, err := svc.GetHistories(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, hs, 101)
}

func TestConcurrentUsesNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	svc := newInMemory()
	_, err := svc.Charge(ctx, 1, 100)
	require.NoError(t, err)

	var ok, rejected atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Use(ctx, 1, 5)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, services.ErrInsufficientBalance):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20), ok.Load())
	assert.Equal(t, int64(30), rejected.Load())
	up, err := svc.GetPoint(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, up.Point)
}

func TestConcurrentChargesStopAtLimit(t *testing.T) {
	ctx := context.Background()
	svc := newInMemory()

	var ok atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 600; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Charge(ctx, 1, 10); err == nil {
				ok.Add(1)
			} else {
				assert.ErrorIs(t, err, services.ErrLimitExceeded)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(500), ok.Load())
	up, err := svc.GetPoint(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, services.DefaultMaxBalance, up.Point)
}

func TestChargeThenUseHistory(t *testing.T) {
	ctx := context.Background()
	svc := newInMemory()

	_, err := svc.Charge(ctx, 1, 3000)
	require.NoError(t, err)
	up, err := svc.Use(ctx, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), up.Point)

	hs, err := svc.GetHistories(ctx, 1)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, models.TxnCharge, hs[0].Type)
	assert.Equal(t, int64(3000), hs[0].Amount)
	assert.Equal(t, models.TxnUse, hs[1].Type)
	assert.Equal(t, int64(1000), hs[1].Amount)
	assert.Less(t, hs[0].ID, hs[1].ID)
	assert.Equal(t, up.UpdateMillis, hs[1].TimeMillis)
}

func TestRejectionLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newInMemory()
	_, err := svc.Charge(ctx, 1, 4000)
	require.NoError(t, err)

	_, err = svc.Charge(ctx, 1, 2000)
	require.ErrorIs(t, err, services.ErrLimitExceeded)
	_, err = svc.Use(ctx, 1, 4001)
	require.ErrorIs(t, err, services.ErrInsufficientBalance)

	up, err := svc.GetPoint(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), up.Point)
	hs, err := svc.GetHistories(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, hs, 1)
}

// gatedPoints blocks InsertOrUpdate for one user until release is closed.
type gatedPoints struct {
	*memory.UserPoints
	user    int64
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedPoints(user int64) *gatedPoints {
	return &gatedPoints{
		UserPoints: memory.NewUserPoints(),
		user:       user,
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func (g *gatedPoints) InsertOrUpdate(ctx context.Context, id, point int64) (models.UserPoint, error) {
	if id == g.user {
		g.once.Do(func() { close(g.entered) })
		<-g.release
	}
	return g.UserPoints.InsertOrUpdate(ctx, id, point)
}

func TestUsersDoNotBlockEachOther(t *testing.T) {
	ctx := context.Background()
	points := newGatedPoints(1)
	svc := services.NewPointService(points, memory.NewPointHistories(), services.WithLogger(quiet))

	go func() { _, _ = svc.Charge(ctx, 1, 100) }()
	<-points.entered

	done := make(chan error, 1)
	go func() {
		_, err := svc.Charge(ctx, 2, 100)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("charge for user 2 waited on user 1")
	}
	close(points.release)
}

func TestConsistentReadsWaitForMutation(t *testing.T) {
	ctx := context.Background()
	points := newGatedPoints(1)
	svc := services.NewPointService(points, memory.NewPointHistories(),
		services.WithLogger(quiet), services.WithConsistentReads(true))

	charged := make(chan struct{})
	go func() {
		defer close(charged)
		_, _ = svc.Charge(ctx, 1, 100)
	}()
	<-points.entered

	read := make(chan models.UserPoint, 1)
	go func() {
		up, _ := svc.GetPoint(ctx, 1)
		read <- up
	}()

	select {
	case <-read:
		t.Fatal("read returned while a charge was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(points.release)
	<-charged
	up := <-read
	assert.Equal(t, int64(100), up.Point)
}
