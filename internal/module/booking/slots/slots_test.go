package slots_test

import (
	"testing"
	"time"

	"autocare-service/internal/module/booking/slots"

	"github.com/stretchr/testify/assert"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

func TestValid(t *testing.T) {
	for _, s := range slots.Grid {
		assert.True(t, slots.Valid(s))
	}
	assert.False(t, slots.Valid("18:00-20:00"))
	assert.False(t, slots.Valid("08:00"))
	assert.False(t, slots.Valid(""))
}

func TestValidateBookable(t *testing.T) {
	testCases := []struct {
		name    string
		date    string
		slot    string
		wantErr bool
	}{
		{name: "same day", date: "2026-09-07", slot: "14:00-16:00", wantErr: false},
		{name: "weekday inside window", date: "2026-09-14", slot: "08:00-10:00", wantErr: false},
		{name: "saturday", date: "2026-09-12", slot: "08:00-10:00", wantErr: true},
		{name: "sunday", date: "2026-09-13", slot: "08:00-10:00", wantErr: true},
		{name: "past date", date: "2026-09-04", slot: "08:00-10:00", wantErr: true},
		{name: "last weekday of window", date: "2026-12-04", slot: "08:00-10:00", wantErr: false},
		{name: "beyond window", date: "2026-12-07", slot: "08:00-10:00", wantErr: true},
		{name: "unknown slot", date: "2026-09-07", slot: "09:00-11:00", wantErr: true},
		{name: "malformed date", date: "07-09-2026", slot: "08:00-10:00", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := slots.ValidateBookable(tc.date, tc.slot, monday, 90, time.UTC)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartTime(t *testing.T) {
	t.Run("minutes respected", func(t *testing.T) {
		start, err := slots.StartTime("2026-09-07", "14:00-16:00", time.UTC)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC), start)
	})

	t.Run("location respected", func(t *testing.T) {
		loc := time.FixedZone("EAT", 3*60*60)
		start, err := slots.StartTime("2026-09-07", "08:00-10:00", loc)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc).UTC(), start.UTC())
	})

	t.Run("malformed slot", func(t *testing.T) {
		_, err := slots.StartTime("2026-09-07", "morning", time.UTC)
		assert.Error(t, err)
	})
}
