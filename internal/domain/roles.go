package domain

// Hirarki jabatan struktural yayasan. String-nya persis dengan kolom
// roles.name di database dan dipakai utuh oleh mesin persetujuan cuti.
const (
	RoleSuperadmin         = "superadmin"
	RoleKepalaYayasan      = "kepala_yayasan"
	RoleDirpen             = "dirpen" // direktur pendidikan
	RoleKepalaHRD          = "kepala_hrd"
	RoleStaffHRD           = "staff_hrd"
	RoleKepalaDepartemen   = "kepala_departemen"
	RoleKepalaSekolah      = "kepala_sekolah"
	RoleTenagaPendidik     = "tenaga_pendidik"
	RoleTenagaKependidikan = "tenaga_kependidikan"
)
