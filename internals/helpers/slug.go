// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateSlug mengubah teks bebas jadi slug [a-z0-9-].
// Base dipotong di 90 karakter, bukan 100: kolom slug varchar(100) dan
// EnsureUniqueSlug masih bisa menambahkan suffix "-N" tanpa overflow.
func GenerateSlug(s string) string {
	out := slug.Make(s)
	if out == "" {
		out = "item"
	}
	if len(out) > 90 {
		out = out[:90]
		out = strings.TrimRight(out, "-")
	}
	return out
}

// EnsureUniqueSlug mencari slug unik pada tabel tertentu, di dalam satu tenant.
// base → slug dasar (hasil GenerateSlug).
// table → nama tabel, misal "events".
// column → nama kolom slug, misal "event_slug".
// tenantColumn + tenantID → scope pencarian; slug hanya perlu unik per sekolah.
func EnsureUniqueSlug(db *gorm.DB, base, table, column, tenantColumn string, tenantID any) (string, error) {
	var count int64
	q := db.Table(table).Where(fmt.Sprintf("%s = ?", column), base)
	if tenantColumn != "" {
		q = q.Where(fmt.Sprintf("%s = ?", tenantColumn), tenantID)
	}
	if err := q.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	// cari suffix terbesar
	type row struct{ Slug string }
	var rows []row
	q = db.Table(table).
		Select(column + " as slug").
		Where(fmt.Sprintf("%s LIKE ?", column), base+"%")
	if tenantColumn != "" {
		q = q.Where(fmt.Sprintf("%s = ?", tenantColumn), tenantID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, r := range rows {
		m := re.FindStringSubmatch(r.Slug)
		if len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}

	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}
