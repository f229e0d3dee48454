package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayValid(t *testing.T) {
	assert.True(t, WeekdayMonday.Valid())
	assert.True(t, WeekdayFriday.Valid())
	assert.False(t, Weekday("Saturday").Valid())
	assert.False(t, Weekday("Sunday").Valid())
	assert.False(t, Weekday("").Valid())
	assert.False(t, Weekday("monday").Valid())
}

func TestWeekdayBefore(t *testing.T) {
	assert.True(t, WeekdayMonday.Before(WeekdayFriday))
	assert.True(t, WeekdayTuesday.Before(WeekdayWednesday))
	assert.False(t, WeekdayFriday.Before(WeekdayMonday))

	// The ordering is strict, a day never precedes itself.
	assert.False(t, WeekdayWednesday.Before(WeekdayWednesday))
}
