package leave

import (
	"time"

	"github.com/google/uuid"
)

// Jenis cuti yang dikenal yayasan.
const (
	TypeTahunan    = "tahunan"
	TypeMelahirkan = "melahirkan"
	TypeMenikah    = "menikah"
	TypeDuka       = "duka"
	TypeBersama    = "bersama"
	TypePotongGaji = "potong_gaji"
	TypeLainnya    = "lainnya"
)

// Status pengajuan cuti. Lima belas status: tiga per tahap tinjauan.
// Status disetujui_*_menunggu_tinjauan_dirpen pada tahap non-final hanya
// muncul di activity log sebagai hop antara; kolom status langsung pindah
// ke ditinjau_dirpen dalam transaksi yang sama.
const (
	StatusDitinjauKepalaSekolah                = "ditinjau_kepala_sekolah"
	StatusDitolakKepalaSekolah                 = "ditolak_kepala_sekolah"
	StatusDisetujuiKepalaSekolahMenungguDirpen = "disetujui_kepala_sekolah_menunggu_tinjauan_dirpen"

	StatusDitinjauKepalaDepartemen                = "ditinjau_kepala_departemen"
	StatusDitolakKepalaDepartemen                 = "ditolak_kepala_departemen"
	StatusDisetujuiKepalaDepartemenMenungguDirpen = "disetujui_kepala_departemen_menunggu_tinjauan_dirpen"

	StatusDitinjauKepalaHRD                = "ditinjau_kepala_hrd"
	StatusDitolakKepalaHRD                 = "ditolak_kepala_hrd"
	StatusDisetujuiKepalaHRDMenungguDirpen = "disetujui_kepala_hrd_menunggu_tinjauan_dirpen"

	StatusDitinjauDirpen  = "ditinjau_dirpen"
	StatusDitolakDirpen   = "ditolak_dirpen"
	StatusDisetujuiDirpen = "disetujui_dirpen"

	StatusDitinjauKepalaYayasan  = "ditinjau_kepala_yayasan"
	StatusDitolakKepalaYayasan   = "ditolak_kepala_yayasan"
	StatusDisetujuiKepalaYayasan = "disetujui_kepala_yayasan"
)

// LeaveRequest immutable setelah mencapai status terminal; komentar reviewer
// tidak disimpan di sini melainkan di activity log.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	StartDate  time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time `gorm:"column:end_date;type:date;not null"`
	LeaveType  string    `gorm:"column:leave_type;type:varchar(20);not null"`
	Status     string    `gorm:"column:status;type:varchar(60);not null;index"`
	Reason     *string   `gorm:"column:reason;type:text"`
	FileRef    *string   `gorm:"column:file_ref;type:varchar(255)"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func KnownLeaveType(t string) bool {
	switch t {
	case TypeTahunan, TypeMelahirkan, TypeMenikah, TypeDuka, TypeBersama, TypePotongGaji, TypeLainnya:
		return true
	}
	return false
}

// IsTerminal: semua ditolak_* plus persetujuan di tahap final.
func IsTerminal(status string) bool {
	switch status {
	case StatusDitolakKepalaSekolah,
		StatusDitolakKepalaDepartemen,
		StatusDitolakKepalaHRD,
		StatusDitolakDirpen,
		StatusDitolakKepalaYayasan,
		StatusDisetujuiDirpen,
		StatusDisetujuiKepalaYayasan:
		return true
	}
	return false
}

func IsApproved(status string) bool {
	return status == StatusDisetujuiDirpen || status == StatusDisetujuiKepalaYayasan
}
