// file: internals/tenant/resolver.go
package tenant

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrSlugNotConfigured: SCHOOL_SLUG kosong. Fatal — proses tidak boleh
	// melayani satu pun operasi tenant.
	ErrSlugNotConfigured = fiber.NewError(fiber.StatusInternalServerError, "SCHOOL_SLUG belum dikonfigurasi")
	// ErrSchoolNotFound: slug tidak ada di tabel schools. Fatal untuk proses ini.
	ErrSchoolNotFound = fiber.NewError(fiber.StatusInternalServerError, "Sekolah untuk deployment ini tidak ditemukan")
)

// Resolver memetakan slug deployment (satu proses = satu sekolah) ke
// school_id internal. Lookup ke DB hanya terjadi sekali seumur proses;
// setelah itu id diambil dari cache. Resolver di-inject eksplisit ke semua
// controller/service — bukan global — supaya isolasi tenant bisa diuji per-call.
type Resolver struct {
	db   *gorm.DB
	slug string

	once     sync.Once
	schoolID uuid.UUID
	err      error
}

func NewResolver(db *gorm.DB, slug string) *Resolver {
	return &Resolver{db: db, slug: strings.TrimSpace(slug)}
}

// Slug mengembalikan slug deployment tanpa menyentuh DB — dipakai untuk
// prefix path storage dsb.
func (r *Resolver) Slug() string {
	return r.slug
}

// SchoolID me-resolve slug → school_id. Panggilan pertama membaca DB; panggilan
// berikutnya mengembalikan hasil cache (termasuk error-nya — kegagalan resolusi
// tidak recoverable per-request).
func (r *Resolver) SchoolID(ctx context.Context) (uuid.UUID, error) {
	r.once.Do(func() {
		if r.slug == "" {
			r.err = ErrSlugNotConfigured
			return
		}

		// scan lewat string: kolom uuid bernilai string di wire (simple
		// protocol di postgres maupun sqlite), uuid.UUID tidak bisa jadi
		// target Scan langsung di query Raw
		var raw string
		err := r.db.WithContext(ctx).Raw(`
			SELECT school_id
			FROM schools
			WHERE school_slug = ? AND school_deleted_at IS NULL
			LIMIT 1
		`, r.slug).Scan(&raw).Error
		if err != nil {
			r.err = err
			return
		}
		if raw == "" {
			r.err = ErrSchoolNotFound
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			r.err = err
			return
		}
		r.schoolID = id
	})
	return r.schoolID, r.err
}

// MustSchoolID dipakai saat bootstrap (main) di mana kegagalan memang fatal.
func (r *Resolver) MustSchoolID(ctx context.Context) uuid.UUID {
	id, err := r.SchoolID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}
