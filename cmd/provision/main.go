// Provisioning satu sekolah: buat row schools + kredensial admin pertama.
// Idempotent — aman dijalankan ulang dengan slug/username yang sama.
//
//	go run ./cmd/provision -slug sd-harapan -name "SD Harapan" \
//	  -admin-user admin -admin-pass rahasia123
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	applicationModel "sekolahku_backend/internals/features/school/applications/model"
	contactModel "sekolahku_backend/internals/features/school/contacts/model"
	eventModel "sekolahku_backend/internals/features/school/events/model"
	galleryModel "sekolahku_backend/internals/features/school/gallery/model"
	noticeModel "sekolahku_backend/internals/features/school/notices/model"
	popupModel "sekolahku_backend/internals/features/school/popups/model"
	"sekolahku_backend/internals/features/schools/model"
	helper "sekolahku_backend/internals/helpers"
)

func main() {
	slug := flag.String("slug", "", "slug unik sekolah (jadi subdomain/identitas deployment)")
	name := flag.String("name", "", "nama sekolah")
	adminUser := flag.String("admin-user", "admin", "username admin pertama")
	adminPass := flag.String("admin-pass", "", "password admin pertama (min 8 karakter)")
	flag.Parse()

	if *slug == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*adminPass) < 8 {
		log.Fatal("❌ -admin-pass wajib diisi, minimal 8 karakter")
	}

	configs.LoadEnv()
	database.ConnectDB()
	db := database.DB

	if err := migrate(db); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}

	school, err := ensureSchool(db, helper.GenerateSlug(*slug), *name)
	if err != nil {
		log.Fatalf("❌ Gagal provision sekolah: %v", err)
	}

	if err := ensureAdmin(db, school, *adminUser, *adminPass); err != nil {
		log.Fatalf("❌ Gagal provision admin: %v", err)
	}

	fmt.Printf("✅ Sekolah %q siap (school_id=%s)\n", school.SchoolSlug, school.SchoolID)
}

// migrate menjalankan AutoMigrate untuk semua tabel. Idempotent.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.SchoolModel{},
		&model.SchoolAdminModel{},
		&eventModel.EventModel{},
		&noticeModel.NoticeModel{},
		&galleryModel.GalleryImageModel{},
		&popupModel.PopupModel{},
		&applicationModel.ApplicationFormModel{},
		&contactModel.ContactMessageModel{},
	)
}

// ensureSchool: pakai row lama kalau slug sudah ada, insert kalau belum.
func ensureSchool(db *gorm.DB, slug, name string) (*model.SchoolModel, error) {
	var existing model.SchoolModel
	err := db.Where("school_slug = ?", slug).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️  Sekolah %q sudah ada, skip.", slug)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	school := &model.SchoolModel{
		SchoolSlug:     slug,
		SchoolName:     name,
		SchoolIsActive: true,
	}
	if err := db.Create(school).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Sekolah %q dibuat.", slug)
	return school, nil
}

// ensureAdmin: satu username per sekolah; kalau sudah ada, password TIDAK
// diubah (ganti password lewat endpoint change-password).
func ensureAdmin(db *gorm.DB, school *model.SchoolModel, username, password string) error {
	var existing model.SchoolAdminModel
	err := db.Where("school_admin_school_id = ? AND school_admin_username = ?",
		school.SchoolID, username).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️  Admin %q sudah ada, skip.", username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.SchoolAdminModel{
		SchoolAdminSchoolID:     school.SchoolID,
		SchoolAdminUsername:     username,
		SchoolAdminPasswordHash: string(hash),
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin %q dibuat.", username)
	return nil
}
