package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/config"
	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/pkg/sse"
	"github.com/humbingo/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.seq++
	att.ID = fmt.Sprintf("att-%d", f.seq)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Date.Year() == year && att.Date.Month() == month {
			out = append(out, att)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Code == code {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = false
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, emp := range f.employees {
		if emp.IsActive {
			ids = append(ids, emp.ID)
		}
	}
	return ids, nil
}

func testHRConfig() config.HRConfig {
	return config.HRConfig{
		PresentThresholdHours: 7,
		HalfDayThresholdHours: 4,
		DefaultWorkingDays:    26,
		DefaultPFPercentage:   "12.00",
		CurrencySymbol:        "₹",
	}
}

func newTestService(repo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, events *sse.Hub) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, empRepo, events, testHRConfig()).(*AttendanceServiceImpl)
	return svc
}

func activeEmployee() employee.Employee {
	return employee.Employee{
		ID:       "emp-1",
		Code:     "EMP001",
		Name:     "Ravi Kumar",
		Email:    "ravi.kumar@humbingo.com",
		IsActive: true,
	}
}

func TestCheckInCreatesRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(activeEmployee()), nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Checked In", resp.Status)
	assert.Equal(t, "2025-06-02", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:00:00", *resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Equal(t, "Ravi Kumar", resp.EmployeeName)
	assert.Len(t, repo.records, 1)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInInactiveEmployee(t *testing.T) {
	emp := activeEmployee()
	emp.IsActive = false
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), nil)

	_, err := svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), nil)

	_, err := svc.CheckIn(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC) }

	_, err := svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutFullDayIsPresent(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, "8:00:00", *resp.TotalHours)
}

func TestCheckOutShortDayIsHalfDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Half Day", resp.Status)
	assert.Equal(t, "5:30:00", *resp.TotalHours)
}

func TestCheckOutTwice(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestMarkAttendanceOverridesDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(activeEmployee()), nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	checkIn, checkOut := "09:00:00", "17:30:00"
	resp, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.Equal(t, "8:30:00", *resp.TotalHours)
	assert.Len(t, repo.records, 1, "override must not create a second record for the day")
}

func TestMarkAttendanceCheckOutRequiresCheckIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)

	checkOut := "17:00:00"
	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		CheckOut:   &checkOut,
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "check_out", verrs[0].Field)
}

func TestMarkAttendanceNegativeDurationIsAbsent(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)

	checkIn, checkOut := "18:00:00", "09:00:00"
	resp, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	assert.Equal(t, "Absent", resp.Status)
	assert.Equal(t, "-9:00:00", *resp.TotalHours)
}

func TestMonthlySummaryDefaultsWorkingDays(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), nil)

	summary, err := svc.GetMonthlySummary(context.Background(), "emp-1", 2025, 6, 0)
	require.NoError(t, err)

	assert.Equal(t, 26, summary.TotalWorkingDays)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 26, summary.AbsentDays)
}

func TestMonthlySummaryCounts(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(activeEmployee()), nil)

	punch := func(day int, in, out string) {
		req := attendance.MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       fmt.Sprintf("2025-06-%02d", day),
			CheckIn:    &in,
		}
		if out != "" {
			req.CheckOut = &out
		}
		_, err := svc.MarkAttendance(context.Background(), req)
		require.NoError(t, err)
	}

	punch(2, "09:00:00", "17:00:00") // 8h, present
	punch(3, "09:00:00", "17:00:00") // 8h, present
	punch(4, "09:00:00", "14:00:00") // 5h, half day
	punch(5, "09:00:00", "")         // open session counts as absent

	summary, err := svc.GetMonthlySummary(context.Background(), "emp-1", 2025, 6, 20)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 17, summary.AbsentDays)
	assert.InDelta(t, 21.0, summary.TotalHoursWorked, 1e-9)
}

func TestCheckInPublishesEvent(t *testing.T) {
	events := sse.NewHub()
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee()), events)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	ch, cleanup := events.Subscribe()
	defer cleanup()

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	select {
	case event := <-ch:
		assert.Equal(t, "attendance.checked_in", event.Name)
		resp, ok := event.Data.(attendance.AttendanceResponse)
		require.True(t, ok)
		assert.Equal(t, "emp-1", resp.EmployeeID)
	default:
		t.Fatal("expected an event on the feed")
	}
}
