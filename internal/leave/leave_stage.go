package leave

import "hr-yayasan/internal/domain"

// Stage adalah satu meja tinjauan dalam jalur persetujuan. Tahap non-final
// meneruskan persetujuan ke dirpen; tahap final menutup pengajuan.
type Stage struct {
	Name         string
	ReviewerRole string
	Final        bool
	Pending      string
	Rejected     string
	Approved     string
}

var stages = []Stage{
	{
		Name:         "kepala_sekolah",
		ReviewerRole: domain.RoleKepalaSekolah,
		Pending:      StatusDitinjauKepalaSekolah,
		Rejected:     StatusDitolakKepalaSekolah,
		Approved:     StatusDisetujuiKepalaSekolahMenungguDirpen,
	},
	{
		Name:         "kepala_departemen",
		ReviewerRole: domain.RoleKepalaDepartemen,
		Pending:      StatusDitinjauKepalaDepartemen,
		Rejected:     StatusDitolakKepalaDepartemen,
		Approved:     StatusDisetujuiKepalaDepartemenMenungguDirpen,
	},
	{
		Name:         "kepala_hrd",
		ReviewerRole: domain.RoleKepalaHRD,
		Pending:      StatusDitinjauKepalaHRD,
		Rejected:     StatusDitolakKepalaHRD,
		Approved:     StatusDisetujuiKepalaHRDMenungguDirpen,
	},
	{
		Name:         "dirpen",
		ReviewerRole: domain.RoleDirpen,
		Final:        true,
		Pending:      StatusDitinjauDirpen,
		Rejected:     StatusDitolakDirpen,
		Approved:     StatusDisetujuiDirpen,
	},
	{
		Name:         "kepala_yayasan",
		ReviewerRole: domain.RoleKepalaYayasan,
		Final:        true,
		Pending:      StatusDitinjauKepalaYayasan,
		Rejected:     StatusDitolakKepalaYayasan,
		Approved:     StatusDisetujuiKepalaYayasan,
	},
}

var stageByPending = func() map[string]Stage {
	m := make(map[string]Stage, len(stages))
	for _, s := range stages {
		m[s.Pending] = s
	}
	return m
}()

var stageByReviewerRole = func() map[string]Stage {
	m := make(map[string]Stage, len(stages))
	for _, s := range stages {
		m[s.ReviewerRole] = s
	}
	return m
}()

// initialStatusByRole menentukan meja pertama berdasarkan peran pengaju.
// Peran di luar tabel ini (superadmin, kepala_yayasan) tidak punya jalur
// persetujuan.
var initialStatusByRole = map[string]string{
	domain.RoleTenagaPendidik:     StatusDitinjauKepalaSekolah,
	domain.RoleTenagaKependidikan: StatusDitinjauKepalaDepartemen,
	domain.RoleKepalaSekolah:      StatusDitinjauKepalaHRD,
	domain.RoleKepalaDepartemen:   StatusDitinjauKepalaHRD,
	domain.RoleStaffHRD:           StatusDitinjauKepalaHRD,
	domain.RoleKepalaHRD:          StatusDitinjauDirpen,
	domain.RoleDirpen:             StatusDitinjauKepalaYayasan,
}

// StageForStatus mengembalikan meja yang memiliki status ditinjau_* ini.
func StageForStatus(status string) (Stage, bool) {
	s, ok := stageByPending[status]
	return s, ok
}

// StageForReviewer mengembalikan meja milik peran reviewer.
func StageForReviewer(role string) (Stage, bool) {
	s, ok := stageByReviewerRole[role]
	return s, ok
}

// InitialStatusForRole mengembalikan status awal pengajuan untuk peran ini.
func InitialStatusForRole(role string) (string, bool) {
	s, ok := initialStatusByRole[role]
	return s, ok
}
