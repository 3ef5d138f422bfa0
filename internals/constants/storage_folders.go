package constants

// Folder tujuan upload di OSS. Object key selalu berbentuk
// <school_slug>/<folder>/<nama-file>, jadi daftar ini adalah bagian dari
// kontrak storage — jangan tambah folder sembarangan.
const (
	FolderEvents       = "events"
	FolderGallery      = "gallery"
	FolderNotices      = "notices"
	FolderPopups       = "popups"
	FolderApplications = "applications"
)

var validStorageFolders = map[string]struct{}{
	FolderEvents:       {},
	FolderGallery:      {},
	FolderNotices:      {},
	FolderPopups:       {},
	FolderApplications: {},
}

func IsValidStorageFolder(folder string) bool {
	_, ok := validStorageFolders[folder]
	return ok
}
