package constants

// Satu-satunya role yang dikenal dashboard admin sekolah. Klaim role lain
// di dalam token ditolak saat verifikasi.
const RoleAdmin = "admin"
