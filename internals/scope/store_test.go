package scope

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// noteModel: entity konten minimal untuk menguji store tanpa menyeret
// package feature manapun.
type noteModel struct {
	NoteID       uuid.UUID `gorm:"column:note_id;type:uuid;primaryKey"`
	NoteSchoolID uuid.UUID `gorm:"column:note_school_id;type:uuid;not null"`
	NoteTitle    string    `gorm:"column:note_title"`
	NoteCreated  time.Time `gorm:"column:note_created;autoCreateTime"`
}

func (noteModel) TableName() string     { return "notes" }
func (noteModel) PrimaryColumn() string { return "note_id" }
func (noteModel) TenantColumn() string  { return "note_school_id" }

func (m *noteModel) GetSchoolID() uuid.UUID   { return m.NoteSchoolID }
func (m *noteModel) SetSchoolID(id uuid.UUID) { m.NoteSchoolID = id }

func (m *noteModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoteID == uuid.Nil {
		m.NoteID = uuid.New()
	}
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&noteModel{}))
	return db
}

func TestStoreListOnlyReturnsOwnRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	schoolA := uuid.New()
	schoolB := uuid.New()
	storeA := New[noteModel](db, schoolA)
	storeB := New[noteModel](db, schoolB)

	require.NoError(t, storeA.Create(ctx, &noteModel{NoteTitle: "punya A"}))
	require.NoError(t, storeA.Create(ctx, &noteModel{NoteTitle: "punya A juga"}))
	require.NoError(t, storeB.Create(ctx, &noteModel{NoteTitle: "punya B"}))

	rowsA, err := storeA.List(ctx, nil, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, rowsA, 2)
	for _, r := range rowsA {
		assert.Equal(t, schoolA, r.NoteSchoolID)
	}

	countB, err := storeB.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countB)
}

func TestStoreCreateOverwritesCallerSchoolID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	schoolA := uuid.New()
	store := New[noteModel](db, schoolA)

	// caller iseng isi school lain — harus ditimpa
	n := &noteModel{NoteTitle: "inject", NoteSchoolID: uuid.New()}
	require.NoError(t, store.Create(ctx, n))
	assert.Equal(t, schoolA, n.NoteSchoolID)

	got, err := store.GetByID(ctx, n.NoteID)
	require.NoError(t, err)
	assert.Equal(t, schoolA, got.NoteSchoolID)
}

func TestStoreFilterCannotOverrideTenant(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	schoolA := uuid.New()
	schoolB := uuid.New()
	storeA := New[noteModel](db, schoolA)
	storeB := New[noteModel](db, schoolB)

	require.NoError(t, storeB.Create(ctx, &noteModel{NoteTitle: "rahasia B"}))

	// filter caller mencoba memindah scope ke sekolah B — entry itu dibuang
	rows, err := storeA.List(ctx, Filter{"note_school_id": schoolB}, "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStoreGetByIDForeignRowLooksAbsent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	storeA := New[noteModel](db, uuid.New())
	storeB := New[noteModel](db, uuid.New())

	n := &noteModel{NoteTitle: "punya B"}
	require.NoError(t, storeB.Create(ctx, n))

	// row sekolah lain: dilaporkan seperti tidak ada
	_, err := storeA.GetByID(ctx, n.NoteID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// row yang memang tidak ada
	_, err = storeA.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateForeignRowNoWrite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	storeA := New[noteModel](db, uuid.New())
	storeB := New[noteModel](db, uuid.New())

	n := &noteModel{NoteTitle: "asli"}
	require.NoError(t, storeB.Create(ctx, n))

	_, err := storeA.Update(ctx, n.NoteID, map[string]any{"note_title": "diubah A"})
	assert.ErrorIs(t, err, ErrNotFound)

	// pastikan tidak ada write yang lolos
	got, err := storeB.GetByID(ctx, n.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "asli", got.NoteTitle)
}

func TestStoreUpdateStripsTenantAndPKChanges(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	schoolA := uuid.New()
	store := New[noteModel](db, schoolA)

	n := &noteModel{NoteTitle: "awal"}
	require.NoError(t, store.Create(ctx, n))

	got, err := store.Update(ctx, n.NoteID, map[string]any{
		"note_title":     "baru",
		"note_school_id": uuid.New(), // harus dibuang
		"note_id":        uuid.New(), // harus dibuang
	})
	require.NoError(t, err)
	assert.Equal(t, "baru", got.NoteTitle)
	assert.Equal(t, schoolA, got.NoteSchoolID)
	assert.Equal(t, n.NoteID, got.NoteID)
}

func TestStoreDeleteForeignRowNoWrite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	storeA := New[noteModel](db, uuid.New())
	storeB := New[noteModel](db, uuid.New())

	n := &noteModel{NoteTitle: "punya B"}
	require.NoError(t, storeB.Create(ctx, n))

	_, err := storeA.Delete(ctx, n.NoteID)
	assert.ErrorIs(t, err, ErrNotFound)

	// masih ada untuk pemiliknya
	_, err = storeB.GetByID(ctx, n.NoteID)
	assert.NoError(t, err)
}

func TestStoreDeleteReturnsRowForCleanup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	store := New[noteModel](db, uuid.New())
	n := &noteModel{NoteTitle: "akan dihapus"}
	require.NoError(t, store.Create(ctx, n))

	deleted, err := store.Delete(ctx, n.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "akan dihapus", deleted.NoteTitle)

	_, err = store.GetByID(ctx, n.NoteID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreBulkOpsStayScoped(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	schoolA := uuid.New()
	schoolB := uuid.New()
	storeA := New[noteModel](db, schoolA)
	storeB := New[noteModel](db, schoolB)

	require.NoError(t, storeA.Create(ctx, &noteModel{NoteTitle: "a1"}))
	require.NoError(t, storeA.Create(ctx, &noteModel{NoteTitle: "a2"}))
	require.NoError(t, storeB.Create(ctx, &noteModel{NoteTitle: "b1"}))

	affected, err := storeA.UpdateMany(ctx, nil, map[string]any{"note_title": "massal"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	// milik B tidak tersentuh
	rowsB, err := storeB.List(ctx, nil, "", 0, 0)
	require.NoError(t, err)
	require.Len(t, rowsB, 1)
	assert.Equal(t, "b1", rowsB[0].NoteTitle)

	deleted, err := storeA.DeleteMany(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	countB, err := storeB.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countB)
}
