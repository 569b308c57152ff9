package handlers

// User-facing messages. Clients display them as-is.
const (
	msgInvalidPayload = "Format data tidak valid"

	msgTokenMissing     = "Token tidak ditemukan atau format tidak valid"
	msgTokenInvalid     = "Token tidak valid atau kadaluarsa"
	msgTokenNoSubject   = "User ID tidak ditemukan dalam token"
	msgProfileNotOwned  = "Profil anak tidak ditemukan atau tidak diizinkan"
	msgRecordNotOwned   = "Catatan tidak ditemukan atau tidak diizinkan"
	msgUserNotFound     = "Pengguna tidak ditemukan"
	msgProfileIDMissing = "childProfileId wajib diisi"
	msgProfileIDInvalid = "childProfileId tidak valid"
	msgInvalidDate      = "Format tanggal tidak valid"
	msgInvalidRange     = "Rentang tanggal tidak valid"

	msgLoginMissing     = "Email dan kata sandi wajib diisi"
	msgLoginFailed      = "Email atau kata sandi salah"
	msgLoginOK          = "Login berhasil"
	msgLoginError       = "Terjadi kesalahan saat login"
	msgRegisterMissing  = "Semua field wajib diisi"
	msgPasswordTooShort = "Kata sandi minimal 8 karakter"
	msgPasswordTooLong  = "Kata sandi maksimal 72 byte"
	msgEmailTaken       = "Email sudah terdaftar"
	msgRegisterOK       = "Pendaftaran berhasil"
	msgRegisterError    = "Terjadi kesalahan saat mendaftar"
	msgOnboardingOK     = "Onboarding selesai"
	msgOnboardingError  = "Terjadi kesalahan saat menyelesaikan onboarding"
	msgUserProfileError = "Terjadi kesalahan saat mengambil profil anak"

	msgChildProfileMissing = "Nama, usia, dan avatar wajib diisi"
	msgChildAgeInvalid     = "Usia harus berupa angka yang valid"
	msgChildAvatarInvalid  = "Avatar tidak valid"
	msgChildProfileOK      = "Profil anak berhasil disimpan"
	msgChildProfileError   = "Terjadi kesalahan saat menyimpan profil anak"

	msgEmotionMissing       = "Emosi wajib diisi"
	msgDetectionTypeInvalid = "Tipe deteksi tidak valid"
	msgEmotionSaveError     = "Terjadi kesalahan saat menyimpan emosi"
	msgEmotionFetchError    = "Terjadi kesalahan saat mengambil data emosi"

	msgExpressionTextMissing = "Teks catatan wajib diisi"
	msgExpressionIDMissing   = "ID catatan wajib diisi"
	msgExpressionIDInvalid   = "ID catatan tidak valid"
	msgExpressionSaveError   = "Terjadi kesalahan saat menyimpan catatan"
	msgExpressionFetchError  = "Terjadi kesalahan saat mengambil catatan"
	msgExpressionUpdateError = "Terjadi kesalahan saat memperbarui catatan"
	msgExpressionDeleteError = "Terjadi kesalahan saat menghapus catatan"
	msgExpressionDeleted     = "Catatan berhasil dihapus"
)
