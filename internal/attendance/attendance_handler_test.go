package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-yayasan/internal/attendance"
	attendanceerrors "hr-yayasan/internal/attendance/errors"
	"hr-yayasan/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	checkInFn  func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error)
	checkOutFn func(employeeID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error)
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	return f.checkInFn(employeeID, req)
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, employeeID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	return f.checkOutFn(employeeID, req)
}

func (f *fakeAttendanceService) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func performCheckIn(t *testing.T, svc attendance.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	router := gin.New()
	router.POST("/attendances/check-in", func(c *gin.Context) {
		c.Set("employee_id", "e-1")
		c.Set("role", "tenaga_pendidik")
	}, attendance.NewHandler(svc).CheckIn)

	req := httptest.NewRequest(http.MethodPost, "/attendances/check-in", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCheckInHandler_Success(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInFn: func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "e-1", employeeID)
			return attendance.AttendanceResponse{ID: "a-1", Status: attendance.StatusPresent}, nil
		},
	}

	w := performCheckIn(t, svc, `{"latitude": -6.2000, "longitude": 106.8167}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Ok   bool                          `json:"ok"`
		Data attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Equal(t, attendance.StatusPresent, envelope.Data.Status)
}

func TestCheckInHandler_MissingCoordinates(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInFn: func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
			t.Fatal("service must not be called on invalid payload")
			return attendance.AttendanceResponse{}, nil
		},
	}

	w := performCheckIn(t, svc, `{"latitude": -6.2000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestCheckInHandler_OutsideRadiusMapsTo422(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInFn: func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrOutsideWorkRadius
		},
	}

	w := performCheckIn(t, svc, `{"latitude": -6.3000, "longitude": 106.8167}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "BUSINESS_RULE")
}

func idempotentCheckInRouter(t *testing.T, svc attendance.Service) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, rmock := redismock.NewClientMock()

	router := gin.New()
	router.POST("/attendances/check-in",
		func(c *gin.Context) {
			c.Set("user_id", "u-1")
			c.Set("employee_id", "e-1")
		},
		middleware.Idempotency(rdb),
		attendance.NewHandlerWithRedis(svc, rdb).CheckIn,
	)
	return router, rmock
}

func postCheckIn(router *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendances/check-in",
		bytes.NewBufferString(`{"latitude": -6.2000, "longitude": 106.8167}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempKey)
	router.ServeHTTP(w, req)
	return w
}

// Kontrak Idempotency dua arah: middleware memasang lock, handler yang
// melepasnya dan mengisi cache. Kunci memuat user_id dari klaim karena
// middleware menempel setelah autentikasi.
func TestCheckInHandler_CompletesIdempotencyContract(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInFn: func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{ID: "a-1", Status: attendance.StatusPresent}, nil
		},
	}
	router, rmock := idempotentCheckInRouter(t, svc)

	cacheKey := "idemp:/attendances/check-in:u-1:abc"
	lockKey := cacheKey + ":lock"
	rmock.ExpectGet(cacheKey).RedisNil()
	rmock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	rmock.Regexp().ExpectSet(cacheKey, `.+`, 24*time.Hour).SetVal("OK")
	rmock.ExpectDel(lockKey).SetVal(1)

	w := postCheckIn(router, "abc")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCheckInHandler_ReplaysCachedResponse(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInFn: func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
			t.Fatal("cached retry must not reach the service")
			return attendance.AttendanceResponse{}, nil
		},
	}
	router, rmock := idempotentCheckInRouter(t, svc)

	rmock.ExpectGet("idemp:/attendances/check-in:u-1:abc").
		SetVal(`{"id":"a-1","status":"PRESENT"}`)

	w := postCheckIn(router, "abc")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a-1")
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCheckInHandler_SecondCheckInMapsTo409(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInFn: func(employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		},
	}

	w := performCheckIn(t, svc, `{"latitude": -6.2000, "longitude": 106.8167}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}
