package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hr-yayasan/internal/attendance"
	attendanceerrors "hr-yayasan/internal/attendance/errors"
	"hr-yayasan/internal/auditlog"
	"hr-yayasan/internal/employee"
	"hr-yayasan/internal/messaging/kafka"
	"hr-yayasan/internal/worklocation"
	"hr-yayasan/internal/workschedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Kampus utama dari seed data; titik "dekat" kira-kira 30 m dari pusat,
// titik "jauh" lebih dari satu kilometer.
const (
	campusLat = -6.2000
	campusLon = 106.8167
	nearLat   = -6.20025
	nearLon   = 106.8167
	farLat    = -6.2150
	farLon    = 106.8167
)

type fakeAttendanceRepo struct {
	findByEmployeeAndDateFn func(employeeID string, date time.Time) (*attendance.Attendance, error)
	createFn                func(a *attendance.Attendance) error
	updateFn                func(a *attendance.Attendance) error
	findAllFn               func() ([]attendance.Attendance, error)
	findAllByEmployeeFn     func(employeeID string) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(a)
	}
	return nil
}

func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	if f.findAllFn != nil {
		return f.findAllFn()
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(employeeID)
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(a)
	}
	return nil
}

type fakeEmployeeDirectory struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

type fakeScheduleRegistry struct {
	schedule *workschedule.WorkSchedule
	err      error
}

func (f *fakeScheduleRegistry) FindByJabatanAndWeekday(ctx context.Context, jabatan string, weekday int) (*workschedule.WorkSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

type fakeLocationRegistry struct {
	location *worklocation.WorkLocation
}

func (f *fakeLocationRegistry) FindByID(ctx context.Context, id string) (*worklocation.WorkLocation, error) {
	if f.location == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.location, nil
}

type fakeAuditRepo struct {
	entries []*auditlog.Entry
}

func (f *fakeAuditRepo) WithTx(tx *sql.Tx) auditlog.Repository { return f }

func (f *fakeAuditRepo) Append(ctx context.Context, e *auditlog.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepo) FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]auditlog.Entry, error) {
	return nil, nil
}

func (f *fakeAuditRepo) LatestComment(ctx context.Context, entityType string, entityID uuid.UUID) (*string, error) {
	return nil, nil
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type serviceFixture struct {
	svc      attendance.Service
	repo     *fakeAttendanceRepo
	audit    *fakeAuditRepo
	outbox   *fakeOutboxRepo
	mock     sqlmock.Sqlmock
	employee *employee.Employee
}

// newFixture merakit service dengan seluruh dependency palsu: karyawan
// tenaga_pendidik di kampus utama, jadwal Senin 07:30-16:00, jam uji 08:00.
func newFixture(t *testing.T, now time.Time) *serviceFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	locationID := uuid.New()
	emp := &employee.Employee{
		ID:             uuid.New(),
		FullName:       "Ahmad Fauzi",
		Jabatan:        "tenaga_pendidik",
		WorkLocationID: &locationID,
	}

	repo := &fakeAttendanceRepo{}
	audit := &fakeAuditRepo{}
	outbox := &fakeOutboxRepo{}

	svc := attendance.NewService(db, attendance.Dependencies{
		Repo: repo,
		Employees: &fakeEmployeeDirectory{
			employees: map[string]*employee.Employee{emp.ID.String(): emp},
		},
		Schedules: &fakeScheduleRegistry{
			schedule: &workschedule.WorkSchedule{
				Jabatan:   "tenaga_pendidik",
				Weekday:   int(now.Weekday()),
				JamMasuk:  "07:30",
				JamPulang: "16:00",
			},
		},
		Locations: &fakeLocationRegistry{
			location: &worklocation.WorkLocation{
				ID:           locationID,
				Name:         "Kampus Utama",
				Latitude:     campusLat,
				Longitude:    campusLon,
				RadiusMeters: 100,
			},
		},
		Audit:  audit,
		Outbox: outbox,
		Now:    func() time.Time { return now },
	})

	return &serviceFixture{
		svc:      svc,
		repo:     repo,
		audit:    audit,
		outbox:   outbox,
		mock:     mock,
		employee: emp,
	}
}

func checkInReq(lat, lon float64) attendance.CheckInRequest {
	return attendance.CheckInRequest{Latitude: &lat, Longitude: &lon}
}

func checkOutReq(lat, lon float64) attendance.CheckOutRequest {
	return attendance.CheckOutRequest{Latitude: &lat, Longitude: &lon}
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestCheckIn_OnTimeInsideRadius(t *testing.T) {
	now := mondayAt(7, 15)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	var created *attendance.Attendance
	f.repo.createFn = func(a *attendance.Attendance) error {
		created = a
		return nil
	}

	resp, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.NotNil(t, created)
	require.NotNil(t, created.ClockIn)
	assert.True(t, created.ClockIn.Equal(now))
	assert.Equal(t, "2026-08-31", resp.AttendanceDate)

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, "ATTENDANCE_CHECK_IN", f.audit.entries[0].Action)
	assert.Nil(t, f.audit.entries[0].OldValues)

	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, "attendance.check_in", f.outbox.events[0].EventType)
	assert.Equal(t, kafka.OutboxStatusPending, f.outbox.events[0].Status)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCheckIn_AfterJamMasukIsLate(t *testing.T) {
	now := mondayAt(7, 31)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestCheckIn_ExactlyJamMasukIsPresent(t *testing.T) {
	now := mondayAt(7, 30)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestCheckIn_OutsideRadius(t *testing.T) {
	f := newFixture(t, mondayAt(7, 0))
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(farLat, farLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrOutsideWorkRadius)
	assert.Empty(t, f.audit.entries)
	assert.Empty(t, f.outbox.events)
}

func TestCheckIn_SecondAttemptSameDay(t *testing.T) {
	now := mondayAt(9, 0)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	clockIn := mondayAt(7, 10)
	f.repo.findByEmployeeAndDateFn = func(employeeID string, date time.Time) (*attendance.Attendance, error) {
		return &attendance.Attendance{
			ID:         uuid.New(),
			EmployeeID: f.employee.ID,
			ClockIn:    &clockIn,
			Status:     attendance.StatusPresent,
		}, nil
	}

	_, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
}

func TestCheckIn_FillsAbsentPlaceholderRow(t *testing.T) {
	now := mondayAt(7, 0)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	placeholder := &attendance.Attendance{
		ID:             uuid.New(),
		EmployeeID:     f.employee.ID,
		AttendanceDate: mondayAt(0, 0),
		Status:         attendance.StatusAbsent,
	}
	f.repo.findByEmployeeAndDateFn = func(employeeID string, date time.Time) (*attendance.Attendance, error) {
		return placeholder, nil
	}

	var updated *attendance.Attendance
	f.repo.updateFn = func(a *attendance.Attendance) error {
		updated = a
		return nil
	}
	f.repo.createFn = func(a *attendance.Attendance) error {
		t.Fatal("placeholder row must be updated, not duplicated")
		return nil
	}

	resp, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	require.NoError(t, err)

	assert.Equal(t, placeholder.ID.String(), resp.ID)
	require.NotNil(t, updated)
	assert.Equal(t, attendance.StatusPresent, updated.Status)
	require.Len(t, f.audit.entries, 1)
	assert.NotNil(t, f.audit.entries[0].OldValues)
}

func TestCheckIn_DayOff(t *testing.T) {
	now := mondayAt(7, 0)
	f := newFixture(t, now)
	sched := &fakeScheduleRegistry{
		schedule: &workschedule.WorkSchedule{
			Jabatan:  "tenaga_pendidik",
			Weekday:  int(now.Weekday()),
			IsDayOff: true,
		},
	}
	svc := rebuildWithSchedules(t, f, sched, now)

	_, err := svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrDayOff)
}

func TestCheckIn_NoScheduleConfigured(t *testing.T) {
	now := mondayAt(7, 0)
	f := newFixture(t, now)
	sched := &fakeScheduleRegistry{err: gorm.ErrRecordNotFound}
	svc := rebuildWithSchedules(t, f, sched, now)

	_, err := svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrNoWorkScheduleConfigured)
}

func TestCheckIn_MalformedJamMasukRejected(t *testing.T) {
	now := mondayAt(7, 0)
	f := newFixture(t, now)
	sched := &fakeScheduleRegistry{
		schedule: &workschedule.WorkSchedule{
			Jabatan:   "tenaga_pendidik",
			Weekday:   int(now.Weekday()),
			JamMasuk:  "7.30",
			JamPulang: "16:00",
		},
	}
	svc := rebuildWithSchedules(t, f, sched, now)

	// Baris jadwal rusak tidak boleh diam-diam tercatat PRESENT.
	_, err := svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrNoWorkScheduleConfigured)
	assert.Empty(t, f.audit.entries)
	assert.Empty(t, f.outbox.events)
}

func TestCheckIn_NoWorkLocationAssigned(t *testing.T) {
	now := mondayAt(7, 0)
	f := newFixture(t, now)
	f.employee.WorkLocationID = nil
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.CheckIn(context.Background(), f.employee.ID.String(), checkInReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrNoWorkLocationConfigured)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	f := newFixture(t, mondayAt(7, 0))
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.CheckIn(context.Background(), uuid.New().String(), checkInReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
}

func TestCheckOut_HappyPath(t *testing.T) {
	now := mondayAt(16, 5)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	clockIn := mondayAt(7, 10)
	row := &attendance.Attendance{
		ID:             uuid.New(),
		EmployeeID:     f.employee.ID,
		AttendanceDate: mondayAt(0, 0),
		ClockIn:        &clockIn,
		Status:         attendance.StatusPresent,
	}
	f.repo.findByEmployeeAndDateFn = func(employeeID string, date time.Time) (*attendance.Attendance, error) {
		return row, nil
	}

	resp, err := f.svc.CheckOut(context.Background(), f.employee.ID.String(), checkOutReq(nearLat, nearLon))
	require.NoError(t, err)

	require.NotNil(t, resp.ClockOut)
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, "ATTENDANCE_CHECK_OUT", f.audit.entries[0].Action)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, "attendance.check_out", f.outbox.events[0].EventType)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	f := newFixture(t, mondayAt(16, 0))
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.CheckOut(context.Background(), f.employee.ID.String(), checkOutReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	now := mondayAt(17, 0)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	clockIn := mondayAt(7, 10)
	clockOut := mondayAt(16, 5)
	f.repo.findByEmployeeAndDateFn = func(employeeID string, date time.Time) (*attendance.Attendance, error) {
		return &attendance.Attendance{
			ID:         uuid.New(),
			EmployeeID: f.employee.ID,
			ClockIn:    &clockIn,
			ClockOut:   &clockOut,
		}, nil
	}

	_, err := f.svc.CheckOut(context.Background(), f.employee.ID.String(), checkOutReq(nearLat, nearLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
}

func TestCheckOut_OutsideRadius(t *testing.T) {
	now := mondayAt(16, 0)
	f := newFixture(t, now)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	clockIn := mondayAt(7, 10)
	f.repo.findByEmployeeAndDateFn = func(employeeID string, date time.Time) (*attendance.Attendance, error) {
		return &attendance.Attendance{
			ID:         uuid.New(),
			EmployeeID: f.employee.ID,
			ClockIn:    &clockIn,
		}, nil
	}

	_, err := f.svc.CheckOut(context.Background(), f.employee.ID.String(), checkOutReq(farLat, farLon))
	assert.ErrorIs(t, err, attendanceerrors.ErrOutsideWorkRadius)
}

func TestGetAll_ScopedToOwnRecordsWithoutReadAll(t *testing.T) {
	f := newFixture(t, mondayAt(9, 0))

	ownCalled := false
	f.repo.findAllByEmployeeFn = func(employeeID string) ([]attendance.Attendance, error) {
		ownCalled = true
		assert.Equal(t, f.employee.ID.String(), employeeID)
		return []attendance.Attendance{{ID: uuid.New(), EmployeeID: f.employee.ID}}, nil
	}
	f.repo.findAllFn = func() ([]attendance.Attendance, error) {
		t.Fatal("must not list all attendances for a non-privileged reader")
		return nil, nil
	}

	rows, err := f.svc.GetAll(context.Background(), f.employee.ID.String(), false)
	require.NoError(t, err)
	assert.True(t, ownCalled)
	assert.Len(t, rows, 1)
}

// rebuildWithSchedules menukar registry jadwal tanpa membangun ulang fixture.
func rebuildWithSchedules(t *testing.T, f *serviceFixture, sched attendance.ScheduleRegistry, now time.Time) attendance.Service {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectRollback()

	return attendance.NewService(db, attendance.Dependencies{
		Repo: f.repo,
		Employees: &fakeEmployeeDirectory{
			employees: map[string]*employee.Employee{f.employee.ID.String(): f.employee},
		},
		Schedules: sched,
		Locations: &fakeLocationRegistry{
			location: &worklocation.WorkLocation{
				ID:           uuid.New(),
				Latitude:     campusLat,
				Longitude:    campusLon,
				RadiusMeters: 100,
			},
		},
		Audit:  f.audit,
		Outbox: f.outbox,
		Now:    func() time.Time { return now },
	})
}
