package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/felixgrant/punchcard/internal/db"
	"github.com/felixgrant/punchcard/internal/repository"
	"github.com/felixgrant/punchcard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) (AttendanceService, ReportService, CategoryService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	logger := NewLogger(nil, slog.LevelError)

	events := repository.NewSQLiteEventRepo(database)
	users := repository.NewSQLiteUserRepo(database)
	categories := repository.NewSQLiteCategoryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	attendance := NewAttendanceService(events, users, categories, uow, logger)
	reports := NewReportService(events, users, categories, time.UTC, logger)
	catalog := NewCategoryService(categories, logger)
	return attendance, reports, catalog
}

// pinClock makes a service's clock tick one second per call from start, so
// consecutive events keep distinct, ordered timestamps.
func pinClock(svc AttendanceService, start time.Time) {
	s := svc.(*attendanceService)
	current := start
	s.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

var clockBase = time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)

func TestClockIn_FirstContactCreatesUser(t *testing.T) {
	attendance, reports, _ := setupServices(t)
	pinClock(attendance, clockBase)
	ctx := context.Background()

	event, category, err := attendance.ClockIn(ctx, "disc-1", "tester", "Remote Work", "from home")
	require.NoError(t, err)
	assert.Equal(t, "Remote Work", category.Name)
	assert.Equal(t, category.ID, event.CategoryID)
	assert.Equal(t, "from home", event.Note)

	summary, err := reports.Summary(ctx, "disc-1")
	require.NoError(t, err)
	require.NotNil(t, summary.User)
	assert.Equal(t, "tester", summary.User.Username)
	assert.Equal(t, 1, summary.TotalRecords)
	assert.True(t, summary.Status.ClockedIn)
}

func TestClockIn_UnknownCategory(t *testing.T) {
	attendance, _, _ := setupServices(t)

	_, _, err := attendance.ClockIn(context.Background(), "disc-1", "tester", "Interpretive Dance", "")
	require.Error(t, err)
	var invalid *ValidationError
	assert.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "not found")
}

func TestClockIn_WhileClockedInRejected(t *testing.T) {
	attendance, _, _ := setupServices(t)
	pinClock(attendance, clockBase)
	ctx := context.Background()

	_, _, err := attendance.ClockIn(ctx, "disc-1", "tester", "Regular Work", "")
	require.NoError(t, err)

	_, _, err = attendance.ClockIn(ctx, "disc-1", "tester", "Regular Work", "")
	require.Error(t, err)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Reason, "Already clocked in")
}

func TestClockOut_WithoutClockInRejected(t *testing.T) {
	attendance, _, _ := setupServices(t)
	pinClock(attendance, clockBase)

	_, err := attendance.ClockOut(context.Background(), "disc-1", "tester", "")
	require.Error(t, err)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Reason, "clock in first")
}

func TestClockInOut_FullCycle(t *testing.T) {
	attendance, _, _ := setupServices(t)
	pinClock(attendance, clockBase)
	ctx := context.Background()

	_, _, err := attendance.ClockIn(ctx, "disc-1", "tester", "Regular Work", "")
	require.NoError(t, err)

	_, err = attendance.ClockOut(ctx, "disc-1", "tester", "done for today")
	require.NoError(t, err)

	status, err := attendance.Status(ctx, "disc-1")
	require.NoError(t, err)
	assert.True(t, status.CanClockIn)
	assert.False(t, status.ClockedIn)

	// And a second cycle starts cleanly.
	_, _, err = attendance.ClockIn(ctx, "disc-1", "tester", "Overtime", "")
	require.NoError(t, err)
}

func TestClockOut_RejectedAfterPriorClockOut(t *testing.T) {
	attendance, _, _ := setupServices(t)
	pinClock(attendance, clockBase)
	ctx := context.Background()

	_, _, err := attendance.ClockIn(ctx, "disc-1", "tester", "Regular Work", "")
	require.NoError(t, err)
	_, err = attendance.ClockOut(ctx, "disc-1", "tester", "")
	require.NoError(t, err)

	_, err = attendance.ClockOut(ctx, "disc-1", "tester", "")
	require.Error(t, err)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Reason, "Not currently clocked in")
}

func TestStatus_UnknownUserCanClockIn(t *testing.T) {
	attendance, _, _ := setupServices(t)

	status, err := attendance.Status(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.True(t, status.CanClockIn)
	assert.False(t, status.CanClockOut)
}

func TestClockIn_RefreshesChangedUsername(t *testing.T) {
	attendance, reports, _ := setupServices(t)
	pinClock(attendance, clockBase)
	ctx := context.Background()

	_, _, err := attendance.ClockIn(ctx, "disc-1", "old-name", "Regular Work", "")
	require.NoError(t, err)
	_, err = attendance.ClockOut(ctx, "disc-1", "new-name", "")
	require.NoError(t, err)

	summary, err := reports.Summary(ctx, "disc-1")
	require.NoError(t, err)
	assert.Equal(t, "new-name", summary.User.Username)
}

func TestClockIn_UsersIsolated(t *testing.T) {
	attendance, _, _ := setupServices(t)
	pinClock(attendance, clockBase)
	ctx := context.Background()

	_, _, err := attendance.ClockIn(ctx, "disc-1", "alpha", "Regular Work", "")
	require.NoError(t, err)

	// A different user's gate is unaffected.
	_, _, err = attendance.ClockIn(ctx, "disc-2", "beta", "Regular Work", "")
	require.NoError(t, err)

	status, err := attendance.Status(ctx, "disc-2")
	require.NoError(t, err)
	assert.True(t, status.ClockedIn)
}
