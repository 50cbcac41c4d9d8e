package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestSchedule_ResolveStart(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		wantUTC  time.Time
		wantErr  bool
	}{
		{
			name: "winter date resolves with standard offset",
			schedule: Schedule{
				StartDate: Date{2025, time.January, 15},
				StartTime: TimeOfDay{Hour: 9},
				Timezone:  "America/New_York",
			},
			wantUTC: time.Date(2025, time.January, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "summer date resolves with DST offset",
			schedule: Schedule{
				StartDate: Date{2025, time.July, 15},
				StartTime: TimeOfDay{Hour: 9},
				Timezone:  "America/New_York",
			},
			wantUTC: time.Date(2025, time.July, 15, 13, 0, 0, 0, time.UTC),
		},
		{
			name: "spring-forward gap shifts to nearest valid instant after the gap",
			schedule: Schedule{
				// 02:30 does not exist on 2025-03-09 in New York; clocks jump
				// 02:00 -> 03:00. Expect 03:30 EDT, i.e. 07:30 UTC.
				StartDate: Date{2025, time.March, 9},
				StartTime: TimeOfDay{Hour: 2, Minute: 30},
				Timezone:  "America/New_York",
			},
			wantUTC: time.Date(2025, time.March, 9, 7, 30, 0, 0, time.UTC),
		},
		{
			name: "fall-back overlap resolves to the first occurrence",
			schedule: Schedule{
				// 01:30 occurs twice on 2025-11-02 in New York; the first
				// occurrence is still EDT, i.e. 05:30 UTC.
				StartDate: Date{2025, time.November, 2},
				StartTime: TimeOfDay{Hour: 1, Minute: 30},
				Timezone:  "America/New_York",
			},
			wantUTC: time.Date(2025, time.November, 2, 5, 30, 0, 0, time.UTC),
		},
		{
			name: "UTC schedule is a direct mapping",
			schedule: Schedule{
				StartDate: Date{2025, time.June, 1},
				StartTime: TimeOfDay{Hour: 23, Minute: 59, Second: 59},
				Timezone:  "UTC",
			},
			wantUTC: time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "unknown timezone",
			schedule: Schedule{
				StartDate: Date{2025, time.June, 1},
				StartTime: TimeOfDay{Hour: 9},
				Timezone:  "Mars/Olympus_Mons",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.schedule.ResolveStart()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.wantUTC), "got %s, want %s", got.UTC(), tt.wantUTC)
		})
	}
}

func TestSchedule_ResolveStart_GapRendersAfterGap(t *testing.T) {
	s := Schedule{
		StartDate: Date{2025, time.March, 9},
		StartTime: TimeOfDay{Hour: 2, Minute: 30},
		Timezone:  "America/New_York",
	}
	got, err := s.ResolveStart()
	require.NoError(t, err)

	local := got.In(mustLoc(t, "America/New_York"))
	assert.Equal(t, 3, local.Hour())
	assert.Equal(t, 30, local.Minute())
	assert.Equal(t, Date{2025, time.March, 9}, DateOf(local))
}

func TestSchedule_SendDay(t *testing.T) {
	s := Schedule{Timezone: "America/New_York"}

	tests := []struct {
		name string
		at   time.Time
		want Date
	}{
		{
			name: "UTC instant after midnight is still the previous local day",
			at:   time.Date(2025, time.March, 10, 3, 0, 0, 0, time.UTC),
			want: Date{2025, time.March, 9},
		},
		{
			name: "local midnight starts a new send-day",
			at:   time.Date(2025, time.March, 10, 4, 0, 0, 0, time.UTC),
			want: Date{2025, time.March, 10},
		},
		{
			name: "midday maps to the same date",
			at:   time.Date(2025, time.July, 4, 16, 0, 0, 0, time.UTC),
			want: Date{2025, time.July, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SendDay(tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, Date{2025, time.March, 9}, d)
	assert.Equal(t, "2025-03-09", d.String())

	_, err = ParseDate("03/09/2025")
	assert.Error(t, err)
	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)

	tod, err = ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 59, Second: 59}, tod)

	for _, bad := range []string{"25:00", "9am", "", "12:60"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := Date{2025, time.December, 31}
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-31"`, string(b))

	var back Date
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, d, back)
}
