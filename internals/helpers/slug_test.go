package helper

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "lomba-17-agustus", GenerateSlug("Lomba 17 Agustus"))
	assert.Equal(t, "pentas-seni-sd", GenerateSlug("  Pentas Seni SD!  "))
	assert.Equal(t, "item", GenerateSlug("!!!"), "input tanpa karakter slug → fallback")

	// base maksimal 90 karakter supaya suffix "-N" masih muat di varchar(100)
	long := GenerateSlug(strings.Repeat("panjang ", 40))
	assert.LessOrEqual(t, len(long), 90)
	assert.False(t, strings.HasSuffix(long, "-"), "potongan tidak boleh berakhir dengan tanda hubung")
	assert.LessOrEqual(t, len(long)+len("-999999"), 100)
}

type slugRow struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid"`
	Slug     string    `gorm:"column:slug"`
}

func (slugRow) TableName() string { return "slug_rows" }

func TestEnsureUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&slugRow{}))

	schoolA := uuid.New()
	schoolB := uuid.New()
	insert := func(school uuid.UUID, slug string) {
		require.NoError(t, db.Create(&slugRow{ID: uuid.New(), SchoolID: school, Slug: slug}).Error)
	}

	// belum ada: base dipakai langsung
	got, err := EnsureUniqueSlug(db, "acara", "slug_rows", "slug", "school_id", schoolA)
	require.NoError(t, err)
	assert.Equal(t, "acara", got)
	insert(schoolA, got)

	// tabrakan: suffix naik
	got, err = EnsureUniqueSlug(db, "acara", "slug_rows", "slug", "school_id", schoolA)
	require.NoError(t, err)
	assert.Equal(t, "acara-2", got)
	insert(schoolA, got)

	got, err = EnsureUniqueSlug(db, "acara", "slug_rows", "slug", "school_id", schoolA)
	require.NoError(t, err)
	assert.Equal(t, "acara-3", got)

	// tenant lain tidak terpengaruh tabrakan sekolah A
	got, err = EnsureUniqueSlug(db, "acara", "slug_rows", "slug", "school_id", schoolB)
	require.NoError(t, err)
	assert.Equal(t, "acara", got)
}
