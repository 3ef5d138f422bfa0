package sessionguard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock: jam manual untuk menggerakkan waktu tanpa sleep.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type expireRecorder struct {
	mu    sync.Mutex
	calls []string // "tab:reason"
}

func (r *expireRecorder) record(tab, reason string) {
	r.mu.Lock()
	r.calls = append(r.calls, tab+":"+reason)
	r.mu.Unlock()
}

func (r *expireRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func newTestGuard() (*Guard, *fakeClock, *expireRecorder) {
	clock := newFakeClock()
	rec := &expireRecorder{}
	g := New(NewMemoryMarkerStore(), DefaultIdleTimeout, rec.record)
	g.SetClock(clock.Now)
	return g, clock, rec
}

func TestGuardIdleExpiry(t *testing.T) {
	g, clock, rec := newTestGuard()

	g.Start("tab1")
	require.NoError(t, g.Mount("tab1"))

	// masih di dalam threshold
	clock.Advance(DefaultIdleTimeout)
	assert.False(t, g.Sweep("tab1"))
	assert.Empty(t, rec.snapshot())

	// satu detik melewati threshold
	clock.Advance(time.Second)
	assert.True(t, g.Sweep("tab1"))
	assert.Equal(t, []string{"tab1:" + ReasonIdle}, rec.snapshot())
}

func TestGuardTouchExtendsSession(t *testing.T) {
	g, clock, rec := newTestGuard()

	g.Start("tab1")
	clock.Advance(90 * time.Second)
	g.Touch("tab1") // aktivitas → reset hitungan idle

	clock.Advance(90 * time.Second)
	assert.False(t, g.Sweep("tab1"), "90 detik sejak touch terakhir, belum idle")

	clock.Advance(31 * time.Second)
	assert.True(t, g.Sweep("tab1"))
	assert.Len(t, rec.snapshot(), 1)
}

// Reload menghapus marker volatil — Mount berikutnya memaksa logout walau
// token 24 jam masih sah.
func TestGuardMountWithoutMarker(t *testing.T) {
	g, _, rec := newTestGuard()

	err := g.Mount("tab-reload")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, []string{"tab-reload:" + ReasonMarkerMissing}, rec.snapshot())
}

func TestGuardExpireAtMostOnce(t *testing.T) {
	g, clock, rec := newTestGuard()

	g.Start("tab1")
	clock.Advance(DefaultIdleTimeout + time.Second)

	assert.True(t, g.Sweep("tab1"))
	// sweep/mount berulang tidak boleh men-trigger logout kedua
	assert.False(t, g.Sweep("tab1"))
	_ = g.Mount("tab1")
	assert.Len(t, rec.snapshot(), 1)
}

func TestGuardExpireAtMostOnceConcurrent(t *testing.T) {
	g, clock, rec := newTestGuard()

	g.Start("tab1")
	clock.Advance(DefaultIdleTimeout + time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Sweep("tab1")
		}()
	}
	wg.Wait()
	assert.Len(t, rec.snapshot(), 1)
}

func TestGuardStopIsSilent(t *testing.T) {
	g, _, rec := newTestGuard()

	g.Start("tab1")
	g.Stop("tab1") // logout manual — tanpa callback

	assert.Empty(t, rec.snapshot())
	assert.ErrorIs(t, g.Mount("tab1"), ErrSessionExpired)
}

func TestGuardRestartAfterExpire(t *testing.T) {
	g, clock, rec := newTestGuard()

	g.Start("tab1")
	clock.Advance(DefaultIdleTimeout + time.Second)
	require.True(t, g.Sweep("tab1"))

	// login ulang di tab yang sama — siklus baru, expire berikutnya tercatat lagi
	g.Start("tab1")
	require.NoError(t, g.Mount("tab1"))

	clock.Advance(DefaultIdleTimeout + time.Second)
	assert.True(t, g.Sweep("tab1"))
	assert.Len(t, rec.snapshot(), 2)
}

func TestGuardTabsIndependent(t *testing.T) {
	g, clock, rec := newTestGuard()

	g.Start("tab1")
	g.Start("tab2")

	clock.Advance(90 * time.Second)
	g.Touch("tab2")

	clock.Advance(45 * time.Second)
	assert.True(t, g.Sweep("tab1"), "tab1 idle 135 detik")
	assert.False(t, g.Sweep("tab2"), "tab2 baru 45 detik sejak touch")
	assert.Equal(t, []string{"tab1:" + ReasonIdle}, rec.snapshot())
}

func TestGuardWatchStopsOnExpire(t *testing.T) {
	clock := newFakeClock()
	rec := &expireRecorder{}
	g := New(NewMemoryMarkerStore(), DefaultIdleTimeout, rec.record)
	g.SetClock(clock.Now)
	g.SetPollInterval(5 * time.Millisecond)

	g.Start("tab1")
	clock.Advance(DefaultIdleTimeout + time.Second)

	done := make(chan struct{})
	go func() {
		g.Watch(t.Context(), "tab1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch tidak berhenti setelah sesi expired")
	}
	assert.Len(t, rec.snapshot(), 1)
}
