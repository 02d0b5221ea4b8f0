package worksession

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveSession(start time.Time) WorkSession {
	return WorkSession{
		ID:         "ws-1",
		EmployeeID: "emp-1",
		StartTime:  start,
		Status:     StatusActive,
	}
}

func TestWorkSession_SinglePauseCycle(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newActiveSession(start)

	// pause at T+1h, resume at T+1h30, end at T+9h
	require.NoError(t, s.Pause(start.Add(1*time.Hour)))
	assert.Equal(t, StatusPaused, s.Status)
	require.NotNil(t, s.PauseStartTime)

	require.NoError(t, s.Resume(start.Add(90*time.Minute)))
	assert.Equal(t, StatusActive, s.Status)
	assert.Nil(t, s.PauseStartTime)
	assert.Equal(t, 30*time.Minute, s.TotalPauseTime)

	require.NoError(t, s.End(start.Add(9*time.Hour)))
	assert.Equal(t, StatusCompleted, s.Status)
	require.NotNil(t, s.TotalWorkTime)
	assert.Equal(t, 8*time.Hour+30*time.Minute, *s.TotalWorkTime)
	assert.Equal(t, "08:30", s.DurationFormatted())
}

func TestWorkSession_EndWhilePaused(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newActiveSession(start)

	// pause at T+2h, end at T+3h without resuming: the open pause is
	// closed first, so only 2h count as work
	require.NoError(t, s.Pause(start.Add(2*time.Hour)))
	require.NoError(t, s.End(start.Add(3*time.Hour)))

	assert.Equal(t, 1*time.Hour, s.TotalPauseTime)
	require.NotNil(t, s.TotalWorkTime)
	assert.Equal(t, 2*time.Hour, *s.TotalWorkTime)
	assert.Nil(t, s.PauseStartTime)
}

func TestWorkSession_MultiplePauseCyclesAccumulate(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s := newActiveSession(start)

	require.NoError(t, s.Pause(start.Add(1*time.Hour)))
	require.NoError(t, s.Resume(start.Add(1*time.Hour+15*time.Minute)))
	require.NoError(t, s.Pause(start.Add(4*time.Hour)))
	require.NoError(t, s.Resume(start.Add(4*time.Hour+45*time.Minute)))

	assert.Equal(t, 1*time.Hour, s.TotalPauseTime)

	require.NoError(t, s.End(start.Add(9*time.Hour)))
	assert.Equal(t, 8*time.Hour, *s.TotalWorkTime)
}

func TestWorkSession_PauseWhilePausedIsNoop(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newActiveSession(start)

	require.NoError(t, s.Pause(start.Add(1*time.Hour)))
	firstPauseStart := *s.PauseStartTime

	// Second pause must not move the pause start
	require.NoError(t, s.Pause(start.Add(2*time.Hour)))
	assert.Equal(t, firstPauseStart, *s.PauseStartTime)
	assert.Equal(t, StatusPaused, s.Status)
}

func TestWorkSession_ResumeWithoutPauseFails(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newActiveSession(start)

	err := s.Resume(start.Add(1 * time.Hour))
	assert.ErrorIs(t, err, ErrSessionNotPaused)
	assert.Equal(t, time.Duration(0), s.TotalPauseTime)
}

func TestWorkSession_CompletedIsTerminal(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newActiveSession(start)
	require.NoError(t, s.End(start.Add(8*time.Hour)))

	assert.ErrorIs(t, s.End(start.Add(9*time.Hour)), ErrSessionCompleted)
	assert.ErrorIs(t, s.Pause(start.Add(9*time.Hour)), ErrSessionCompleted)
	assert.ErrorIs(t, s.Resume(start.Add(9*time.Hour)), ErrSessionCompleted)
}

func TestWorkSession_NetDurationClampedAtZero(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newActiveSession(start)
	// Pre-recorded pause time exceeding gross elapsed time must not
	// yield a negative net duration.
	s.TotalPauseTime = 5 * time.Hour

	require.NoError(t, s.End(start.Add(1*time.Hour)))
	assert.Equal(t, time.Duration(0), *s.TotalWorkTime)
	assert.Equal(t, "00:00", s.DurationFormatted())
}

func TestWorkSession_DurationFormatted(t *testing.T) {
	s := newActiveSession(time.Now())
	assert.Equal(t, "00:00", s.DurationFormatted())

	d := 7*time.Hour + 5*time.Minute + 59*time.Second
	s.TotalWorkTime = &d
	assert.Equal(t, "07:05", s.DurationFormatted())

	long := 125 * time.Hour
	s.TotalWorkTime = &long
	assert.Equal(t, "125:00", s.DurationFormatted())
}

func TestWorkSession_IsOpen(t *testing.T) {
	start := time.Now()
	s := newActiveSession(start)
	assert.True(t, s.IsOpen())

	require.NoError(t, s.Pause(start.Add(time.Minute)))
	assert.True(t, s.IsOpen())

	require.NoError(t, s.End(start.Add(2*time.Minute)))
	assert.False(t, s.IsOpen())
}
