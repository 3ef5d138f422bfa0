// file: internals/sessionguard/guard.go
//
// Session guard adalah pendamping client untuk kebijakan idle-timeout:
// token bertahan 24 jam, tapi sesi dashboard dipaksa logout jauh lebih cepat
// kalau admin tidak beraktivitas. State-nya volatil per-tab — reload halaman
// menghilangkan marker dan ITU disengaja: tanpa marker, Mount langsung
// memaksa logout walaupun token masih sah.
package sessionguard

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

const (
	DefaultIdleTimeout  = 2 * time.Minute
	DefaultPollInterval = 10 * time.Second
)

// Alasan forced-logout — client menampilkan pesan berbeda untuk
// "sesimu habis karena tidak aktif" vs "kamu belum login".
const (
	ReasonIdle          = "idle"
	ReasonMarkerMissing = "marker-missing"
)

var ErrSessionExpired = errors.New("sesi sudah berakhir")

// Marker adalah isi storage per-tab: flag sesi aktif + timestamp aktivitas
// terakhir. Tidak pernah dipersist — hilang bersama tab-nya.
type Marker struct {
	Active       bool
	LastActivity time.Time
}

// MarkerStore meniru sessionStorage per-tab.
type MarkerStore interface {
	Get(tab string) (Marker, bool)
	Put(tab string, m Marker)
	Delete(tab string)
}

// MemoryMarkerStore: implementasi volatil in-memory.
type MemoryMarkerStore struct {
	mu      sync.Mutex
	markers map[string]Marker
}

func NewMemoryMarkerStore() *MemoryMarkerStore {
	return &MemoryMarkerStore{markers: make(map[string]Marker)}
}

func (s *MemoryMarkerStore) Get(tab string) (Marker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.markers[tab]
	return m, ok
}

func (s *MemoryMarkerStore) Put(tab string, m Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[tab] = m
}

func (s *MemoryMarkerStore) Delete(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.markers, tab)
}

// Guard menegakkan idle-timeout, independen dari (dan lebih ketat daripada)
// expiry token sendiri.
type Guard struct {
	store       MarkerStore
	idleTimeout time.Duration
	poll        time.Duration

	// now bisa diganti di test (fake clock).
	now func() time.Time

	// onExpire dipanggil PALING BANYAK SEKALI per tab yang expired: bersihkan
	// cookie di server (logout endpoint) lalu arahkan ke halaman login dengan
	// indikator reason.
	onExpire func(tab, reason string)

	mu       sync.Mutex
	inflight map[string]bool // guard re-entry logout per tab
}

func New(store MarkerStore, idleTimeout time.Duration, onExpire func(tab, reason string)) *Guard {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Guard{
		store:       store,
		idleTimeout: idleTimeout,
		poll:        DefaultPollInterval,
		now:         time.Now,
		onExpire:    onExpire,
		inflight:    make(map[string]bool),
	}
}

// SetClock mengganti sumber waktu — untuk test.
func (g *Guard) SetClock(now func() time.Time) { g.now = now }

// SetPollInterval mengganti interval polling Watch.
func (g *Guard) SetPollInterval(d time.Duration) {
	if d > 0 {
		g.poll = d
	}
}

// Start dipanggil setelah login sukses: pasang marker aktif.
func (g *Guard) Start(tab string) {
	g.store.Put(tab, Marker{Active: true, LastActivity: g.now()})
	g.mu.Lock()
	delete(g.inflight, tab)
	g.mu.Unlock()
}

// Mount dipanggil saat area admin dimuat. Marker hilang (reload, tab baru)
// = langsung expired, walau token masih valid.
func (g *Guard) Mount(tab string) error {
	m, ok := g.store.Get(tab)
	if !ok || !m.Active {
		g.expire(tab, ReasonMarkerMissing)
		return ErrSessionExpired
	}
	return nil
}

// Touch dipanggil untuk setiap interaksi user (pointer, keyboard, scroll,
// touch): update timestamp aktivitas terakhir.
func (g *Guard) Touch(tab string) {
	m, ok := g.store.Get(tab)
	if !ok || !m.Active {
		return
	}
	m.LastActivity = g.now()
	g.store.Put(tab, m)
}

// Sweep adalah satu tick evaluasi: bandingkan sekarang vs aktivitas terakhir.
// Return true kalau sesi di-expire pada tick ini.
func (g *Guard) Sweep(tab string) bool {
	m, ok := g.store.Get(tab)
	if !ok || !m.Active {
		return false // tidak ada sesi untuk di-expire
	}
	if g.now().Sub(m.LastActivity) <= g.idleTimeout {
		return false
	}
	return g.expire(tab, ReasonIdle)
}

// Watch menjalankan polling sampai ctx selesai atau sesi expired.
func (g *Guard) Watch(ctx context.Context, tab string) {
	ticker := time.NewTicker(g.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if g.Sweep(tab) {
				return
			}
		}
	}
}

// Stop dipakai untuk logout manual: hapus marker tanpa memanggil onExpire.
func (g *Guard) Stop(tab string) {
	g.store.Delete(tab)
}

// expire: hapus marker + callback logout, dijaga supaya logout yang sedang
// berjalan tidak men-trigger duplikat.
func (g *Guard) expire(tab, reason string) bool {
	g.mu.Lock()
	if g.inflight[tab] {
		g.mu.Unlock()
		return false
	}
	g.inflight[tab] = true
	g.mu.Unlock()

	g.store.Delete(tab)
	log.Printf("[SESSION] tab=%s expired (%s)", tab, reason)
	if g.onExpire != nil {
		g.onExpire(tab, reason)
	}
	return true
}
