// file: internals/scope/store.go
//
// Layer akses data ter-scope tenant. SEMUA baca/tulis entity konten wajib
// lewat sini — tidak ada row-security di level DB, jadi layer ini adalah
// satu-satunya mekanisme isolasi antar sekolah.
package scope

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenantable diimplement oleh setiap model konten yang ter-scope sekolah.
// Kolom di tiap tabel mengikuti konvensi prefix (event_school_id, dst),
// makanya nama kolom dideklarasikan oleh model, bukan di-hardcode di sini.
type Tenantable interface {
	PrimaryColumn() string
	TenantColumn() string
	GetSchoolID() uuid.UUID
	SetSchoolID(uuid.UUID)
}

// Filter adalah kondisi tambahan dari caller (kolom = nilai). Kondisi tenant
// TIDAK pernah berasal dari sini; kalau caller iseng menaruh kolom tenant,
// entry itu dibuang dan diganti konstraint milik store.
type Filter map[string]any

// Store adalah repository generik yang terikat ke tepat satu school_id.
// Bangun per-request dengan id hasil tenant.Resolver — jangan pernah
// di-cache lintas tenant.
type Store[T any, PT interface {
	*T
	Tenantable
}] struct {
	db       *gorm.DB
	schoolID uuid.UUID
}

func New[T any, PT interface {
	*T
	Tenantable
}](db *gorm.DB, schoolID uuid.UUID) *Store[T, PT] {
	return &Store[T, PT]{db: db, schoolID: schoolID}
}

func (s *Store[T, PT]) SchoolID() uuid.UUID { return s.schoolID }

func (s *Store[T, PT]) tenantColumn() string {
	var zero T
	return PT(&zero).TenantColumn()
}

func (s *Store[T, PT]) primaryColumn() string {
	var zero T
	return PT(&zero).PrimaryColumn()
}

// scoped: query dasar dengan konstraint tenant yang tidak bisa di-override.
func (s *Store[T, PT]) scoped(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(new(T)).
		Where(fmt.Sprintf("%s = ?", s.tenantColumn()), s.schoolID)
}

// applyFilter menggabungkan filter caller DI BAWAH konstraint tenant.
func (s *Store[T, PT]) applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	tenantCol := s.tenantColumn()
	for col, val := range f {
		if col == tenantCol {
			continue // filter caller tidak boleh menyentuh kolom tenant
		}
		q = q.Where(fmt.Sprintf("%s = ?", col), val)
	}
	return q
}

// List mengembalikan hanya row milik sekolah ini.
func (s *Store[T, PT]) List(ctx context.Context, f Filter, order string, limit, offset int) ([]T, error) {
	q := s.applyFilter(s.scoped(ctx), f)
	if order != "" {
		q = q.Order(order)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count untuk pagination, dengan konstraint tenant yang sama.
func (s *Store[T, PT]) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	if err := s.applyFilter(s.scoped(ctx), f).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID fetch by primary key lalu verifikasi kepemilikan. Row milik sekolah
// lain dilaporkan persis seperti row yang tidak ada.
func (s *Store[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", s.primaryColumn()), id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if PT(&row).GetSchoolID() != s.schoolID {
		return nil, ErrNotOwned
	}
	return &row, nil
}

// Create menstempel school_id milik store ke payload. Apapun yang caller isi
// di field tenant akan ditimpa — tidak dipercaya.
func (s *Store[T, PT]) Create(ctx context.Context, m PT) error {
	m.SetSchoolID(s.schoolID)
	return s.db.WithContext(ctx).Create(m).Error
}

// Update: cek kepemilikan dulu (read-then-write), baru mutasi. Kalau cek gagal,
// TIDAK ada write yang terjadi. Pola dua langkah ini disengaja: call site masih
// bisa membedakan "tidak ada" vs "bukan milikmu", dan row lama tersedia untuk
// cleanup blob. Ada window race kecil antara cek dan mutasi terhadap delete
// konkuren; diterima untuk pola satu-admin-per-sekolah.
func (s *Store[T, PT]) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*T, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// kolom tenant & PK tidak boleh ikut ter-update
	delete(changes, s.tenantColumn())
	delete(changes, s.primaryColumn())
	if len(changes) == 0 {
		return existing, nil
	}

	if err := s.db.WithContext(ctx).Model(existing).Updates(changes).Error; err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete: kontrak cek-kepemilikan-dulu yang sama dengan Update. Mengembalikan
// row sebelum dihapus supaya caller bisa bersihkan blob terkait.
func (s *Store[T, PT]) Delete(ctx context.Context, id uuid.UUID) (*T, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateMany: operasi bulk tidak butuh cek dua langkah — konstraint tenant
// sudah ada di filternya.
func (s *Store[T, PT]) UpdateMany(ctx context.Context, f Filter, changes map[string]any) (int64, error) {
	delete(changes, s.tenantColumn())
	delete(changes, s.primaryColumn())
	res := s.applyFilter(s.scoped(ctx), f).Updates(changes)
	return res.RowsAffected, res.Error
}

// DeleteMany: idem.
func (s *Store[T, PT]) DeleteMany(ctx context.Context, f Filter) (int64, error) {
	res := s.applyFilter(s.scoped(ctx), f).Delete(new(T))
	return res.RowsAffected, res.Error
}
