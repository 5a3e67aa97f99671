package slots

import (
	"testing"
	"time"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, now time.Time) *Validator {
	t.Helper()
	return &Validator{
		Scheduling: config.Scheduling{
			OperatingHourStart:            8,
			OperatingHourEnd:              21,
			ConsultationDurationInMinutes: 15,
			ConsultationLeadTimeInHours:   2,
			ConsultationHorizonInDays:     15,
			RescheduleCutoffInMinutes:     120,
		},
		Location: time.UTC,
		Now:      func() time.Time { return now },
	}
}

func TestIsWithinOperatingWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	testCases := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{"one minute before opening", time.Date(2025, 6, 2, 7, 59, 0, 0, time.UTC), false},
		{"exactly at opening", time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), true},
		{"last minute inside", time.Date(2025, 6, 2, 20, 59, 0, 0, time.UTC), true},
		{"exactly at closing", time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC), false},
		{"midnight", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, v.IsWithinOperatingWindow(tc.instant))
		})
	}
}

func TestIsValidBookingWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	t.Run("rejects past start", func(t *testing.T) {
		start := now.Add(-time.Hour)
		end := now.Add(time.Hour)
		assert.False(t, v.IsValidBookingWindow(models.ServiceTypeHome, start, end))
	})

	t.Run("rejects past end", func(t *testing.T) {
		start := now.Add(time.Hour)
		end := now.Add(-time.Minute)
		assert.False(t, v.IsValidBookingWindow(models.ServiceTypeHome, start, end))
	})

	t.Run("home service outside operating hours rejected", func(t *testing.T) {
		start := time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)
		assert.False(t, v.IsValidBookingWindow(models.ServiceTypeHome, start, end))
	})

	t.Run("health service inside operating hours accepted", func(t *testing.T) {
		start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)
		assert.True(t, v.IsValidBookingWindow(models.ServiceTypeHealth, start, end))
	})

	t.Run("online service skips operating hours", func(t *testing.T) {
		start := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)
		assert.True(t, v.IsValidBookingWindow(models.ServiceTypeOnline, start, end))
	})
}

func TestIsValidOnlineConsultationWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	t.Run("duration boundaries", func(t *testing.T) {
		start := now.Add(3 * time.Hour)

		assert.False(t, v.IsValidOnlineConsultationWindow(start, start.Add(14*time.Minute+59*time.Second)))
		assert.True(t, v.IsValidOnlineConsultationWindow(start, start.Add(15*time.Minute)))
		assert.False(t, v.IsValidOnlineConsultationWindow(start, start.Add(15*time.Minute+time.Second)))
	})

	t.Run("lead time boundaries", func(t *testing.T) {
		atCutoff := now.Add(2 * time.Hour)
		assert.False(t, v.IsValidOnlineConsultationWindow(atCutoff, atCutoff.Add(15*time.Minute)))

		justPast := now.Add(2*time.Hour + time.Second)
		assert.True(t, v.IsValidOnlineConsultationWindow(justPast, justPast.Add(15*time.Minute)))
	})

	t.Run("horizon boundaries", func(t *testing.T) {
		inside := now.Add(15*24*time.Hour - time.Minute)
		assert.True(t, v.IsValidOnlineConsultationWindow(inside, inside.Add(15*time.Minute)))

		atHorizon := now.Add(15 * 24 * time.Hour)
		assert.False(t, v.IsValidOnlineConsultationWindow(atHorizon, atHorizon.Add(15*time.Minute)))
	})

	t.Run("rejects past window", func(t *testing.T) {
		start := now.Add(-time.Hour)
		assert.False(t, v.IsValidOnlineConsultationWindow(start, start.Add(15*time.Minute)))
	})
}

func TestWithinRescheduleCutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	t.Run("just outside cutoff allows reschedule", func(t *testing.T) {
		assert.False(t, v.WithinRescheduleCutoff(now.Add(121*time.Minute)))
	})

	t.Run("exactly at cutoff still allows reschedule", func(t *testing.T) {
		assert.False(t, v.WithinRescheduleCutoff(now.Add(120*time.Minute)))
	})

	t.Run("inside cutoff blocks reschedule", func(t *testing.T) {
		assert.True(t, v.WithinRescheduleCutoff(now.Add(119*time.Minute)))
	})
}

func TestTruncateWindow(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 15, 42, 120, time.UTC)
	end := time.Date(2025, 6, 2, 9, 30, 17, 450, time.UTC)

	truncStart, truncEnd := TruncateWindow(start, end)

	assert.Equal(t, time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC), truncStart)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 59, 0, time.UTC), truncEnd)
}

func TestSlotKey(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 15, 42, 0, time.FixedZone("IST", 5*3600+1800))

	key := SlotKey(start)

	require.Equal(t, "2025-06-02T03:45:00Z", key)

	// Sub-minute differences collapse to the same key.
	assert.Equal(t, key, SlotKey(start.Add(10*time.Second)))
}
