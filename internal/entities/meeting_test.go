package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeetingOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	booked := Meeting{StartTime: at(10, 0), EndTime: at(11, 0)}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical interval", at(10, 0), at(11, 0), true},
		{"contained inside", at(10, 15), at(10, 45), true},
		{"overlaps the start", at(9, 30), at(10, 30), true},
		{"overlaps the end", at(10, 30), at(11, 30), true},
		{"spans the whole slot", at(9, 0), at(12, 0), true},
		{"ends exactly at start", at(9, 0), at(10, 0), false},
		{"starts exactly at end", at(11, 0), at(12, 0), false},
		{"entirely before", at(8, 0), at(9, 0), false},
		{"entirely after", at(12, 0), at(13, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, booked.Overlaps(tc.start, tc.end))
		})
	}
}
