package attendance

import (
	"errors"
	"strings"

	attendanceerrors "hr-yayasan/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError menerjemahkan pelanggaran constraint unik
// (employee_id, attendance_date) menjadi AlreadyCheckedIn, sehingga yang
// kalah balapan dua check-in serentak menerima error terdefinisi, bukan
// menimpa baris pemenang.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return err
}
