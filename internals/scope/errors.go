// file: internals/scope/errors.go
package scope

import (
	"errors"
	"fmt"
)

// ErrNotFound: record tidak ada ATAU milik tenant lain. Ke caller HTTP dua-duanya
// wajib tampil sebagai 404 yang sama persis — keberadaan row milik sekolah lain
// tidak boleh bocor lewat bentuk error yang berbeda.
var ErrNotFound = errors.New("record tidak ditemukan")

// ErrNotOwned membungkus ErrNotFound: di call site masih bisa dibedakan
// (errors.Is(err, ErrNotOwned)) kalau suatu saat perlu audit, tapi
// errors.Is(err, ErrNotFound) tetap true sehingga handler memperlakukannya
// sebagai not-found biasa.
var ErrNotOwned = fmt.Errorf("%w: bukan milik tenant ini", ErrNotFound)
