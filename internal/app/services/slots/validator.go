package slots

import (
	"time"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/models"
)

// Validator decides whether a proposed appointment window is acceptable.
// All checks are pure; Now is injectable so boundary conditions can be
// pinned in tests.
type Validator struct {
	Scheduling config.Scheduling
	Location   *time.Location
	Now        func() time.Time
}

func NewValidator(internalConfig *config.InternalConfig, location *time.Location) *Validator {
	return &Validator{
		Scheduling: internalConfig.Scheduling,
		Location:   location,
		Now:        time.Now,
	}
}

// IsWithinOperatingWindow reports whether the local hour-of-day falls inside
// branch operating hours. The end hour is exclusive.
func (v *Validator) IsWithinOperatingWindow(t time.Time) bool {
	hour := t.In(v.Location).Hour()
	return hour >= v.Scheduling.OperatingHourStart && hour < v.Scheduling.OperatingHourEnd
}

// IsValidBookingWindow checks a physical booking window. Past windows are
// always rejected; Home and Health services must additionally start and end
// inside operating hours. Other service types skip the hour check.
func (v *Validator) IsValidBookingWindow(serviceType models.ServiceType, start, end time.Time) bool {
	now := v.Now()
	if start.Before(now) || end.Before(now) {
		return false
	}
	if serviceType.RequiresOperatingWindow() {
		return v.IsWithinOperatingWindow(start) && v.IsWithinOperatingWindow(end)
	}
	return true
}

// IsValidOnlineConsultationWindow checks an online consultation window. All
// four sub-conditions must hold independently:
//
//	start and end are not in the past,
//	start is strictly more than the lead time ahead of now,
//	the window is exactly the consultation duration,
//	start is strictly less than the horizon ahead of now.
func (v *Validator) IsValidOnlineConsultationWindow(start, end time.Time) bool {
	now := v.Now()
	if start.Before(now) || end.Before(now) {
		return false
	}

	lead := start.Sub(now)
	if lead <= time.Duration(v.Scheduling.ConsultationLeadTimeInHours)*time.Hour {
		return false
	}

	if end.Sub(start) != time.Duration(v.Scheduling.ConsultationDurationInMinutes)*time.Minute {
		return false
	}

	horizon := time.Duration(v.Scheduling.ConsultationHorizonInDays) * 24 * time.Hour
	return lead < horizon
}

// WithinRescheduleCutoff reports whether now is already inside the cutoff
// window before the existing start, i.e. too late to reschedule. A lead of
// exactly the cutoff is still allowed.
func (v *Validator) WithinRescheduleCutoff(existingStart time.Time) bool {
	cutoff := time.Duration(v.Scheduling.RescheduleCutoffInMinutes) * time.Minute
	return existingStart.Sub(v.Now()) < cutoff
}

// TruncateWindow coarsens a window to minute granularity for slot-exclusivity
// matching: start seconds are zeroed, end seconds are forced to :59. Two
// windows whose originals differ only by sub-minute amounts collide after
// truncation.
func TruncateWindow(start, end time.Time) (time.Time, time.Time) {
	truncStart := start.Truncate(time.Minute)
	truncEnd := end.Truncate(time.Minute).Add(59 * time.Second)
	return truncStart, truncEnd
}

// SlotKey derives the storage key backing the unique slot index: the
// minute-truncated start rendered in UTC.
func SlotKey(start time.Time) string {
	return start.Truncate(time.Minute).UTC().Format(time.RFC3339)
}
