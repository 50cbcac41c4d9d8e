package domain

import (
	"context"
	"fmt"
	"time"
)

// Bounds for a schedule's daily send cap.
const (
	MinDailySendLimit = 1
	MaxDailySendLimit = 500
)

// Date is a calendar date with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock local time of day.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses a 24-hour local time in HH:MM or HH:MM:SS form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalJSON encodes the time as "HH:MM:SS".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes an "HH:MM" or "HH:MM:SS" string.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time of day %s", s)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Schedule is a campaign's send schedule: a local start instant and a daily cap.
// swagger:model Schedule
type Schedule struct {
	CampaignID     string    `json:"campaign_id"`
	StartDate      Date      `json:"start_date"`
	StartTime      TimeOfDay `json:"start_time"`
	Timezone       string    `json:"timezone"`
	DailySendLimit int       `json:"daily_send_limit"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location loads the schedule's IANA timezone.
func (s *Schedule) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// ResolveStart interprets the schedule's start date and time as wall-clock
// local time in its timezone and returns the corresponding instant. A local
// time inside a spring-forward gap resolves to the nearest valid instant after
// the gap; a local time that occurs twice during a fall-back overlap resolves
// to the first occurrence.
func (s *Schedule) ResolveStart() (time.Time, error) {
	loc, err := s.Location()
	if err != nil {
		return time.Time{}, err
	}
	return resolveLocal(s.StartDate, s.StartTime, loc), nil
}

// SendDay returns the calendar date the given instant falls on in the
// schedule's timezone. This keys the daily quota and is recomputed on every
// call; it must never be cached across a day boundary.
func (s *Schedule) SendDay(at time.Time) (Date, error) {
	loc, err := s.Location()
	if err != nil {
		return Date{}, err
	}
	return DateOf(at.In(loc)), nil
}

// resolveLocal maps a wall-clock local time to an instant without relying on
// time.Date's handling of DST edge cases, which is unspecified for ambiguous
// and nonexistent wall times.
func resolveLocal(d Date, tod TimeOfDay, loc *time.Location) time.Time {
	// Treat the wall clock reading as a UTC instant, then undo each zone
	// offset in effect around that moment. Probing a day on either side
	// covers both sides of any transition on the target date.
	naive := time.Date(d.Year, d.Month, d.Day, tod.Hour, tod.Minute, tod.Second, 0, time.UTC)
	offsets := make(map[int]struct{})
	for _, probe := range []time.Time{naive.Add(-24 * time.Hour), naive, naive.Add(24 * time.Hour)} {
		_, off := probe.In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var exact, after []time.Time
	for off := range offsets {
		cand := naive.Add(-time.Duration(off) * time.Second)
		local := cand.In(loc)
		if DateOf(local) == d && sameClock(local, tod) {
			exact = append(exact, cand)
		} else if localAfterWall(local, d, tod) {
			after = append(after, cand)
		}
	}

	if t := earliest(exact); !t.IsZero() {
		// Ambiguous wall time: the earliest instant is the first occurrence.
		return t
	}
	if t := earliest(after); !t.IsZero() {
		// The wall time fell inside a gap; the candidate computed with the
		// pre-transition offset lands just past it.
		return t
	}
	return time.Date(d.Year, d.Month, d.Day, tod.Hour, tod.Minute, tod.Second, 0, loc)
}

func sameClock(t time.Time, tod TimeOfDay) bool {
	return t.Hour() == tod.Hour && t.Minute() == tod.Minute && t.Second() == tod.Second
}

// localAfterWall reports whether the local rendering t reads later than the
// requested wall clock (d, tod).
func localAfterWall(t time.Time, d Date, tod TimeOfDay) bool {
	ld := DateOf(t)
	if ld != d {
		return ld.Year > d.Year ||
			(ld.Year == d.Year && (ld.Month > d.Month || (ld.Month == d.Month && ld.Day > d.Day)))
	}
	want := tod.Hour*3600 + tod.Minute*60 + tod.Second
	got := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return got > want
}

func earliest(ts []time.Time) time.Time {
	var min time.Time
	for _, t := range ts {
		if min.IsZero() || t.Before(min) {
			min = t
		}
	}
	return min
}

// ScheduleInput is the raw input for creating or replacing a schedule.
// Validation happens in the schedule service so every violated field is
// reported together.
type ScheduleInput struct {
	StartDate      string `json:"start_date"`
	StartTime      string `json:"start_time"`
	Timezone       string `json:"timezone"`
	DailySendLimit int    `json:"daily_send_limit"`
}

// ScheduleRepository defines the interface for schedule storage. A campaign
// has at most one schedule row.
type ScheduleRepository interface {
	// Upsert creates or wholesale-replaces the campaign's schedule. No
	// partial-field merge.
	Upsert(ctx context.Context, s *Schedule) error
	GetByCampaignID(ctx context.Context, campaignID string) (*Schedule, error)
	DeleteByCampaignID(ctx context.Context, campaignID string) error
}

// ScheduleService defines the business logic for campaign schedules.
type ScheduleService interface {
	// SetSchedule validates the input and creates or replaces the campaign's
	// schedule. Replacing a schedule never resets recorded daily quotas.
	SetSchedule(ctx context.Context, campaignID string, in ScheduleInput) (*Schedule, error)
	GetSchedule(ctx context.Context, campaignID string) (*Schedule, error)
	// DeleteSchedule removes the schedule, reverting the campaign to
	// manual-only sends. The campaign itself is untouched.
	DeleteSchedule(ctx context.Context, campaignID string) error
}
