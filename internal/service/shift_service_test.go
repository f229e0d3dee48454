package service

import (
	"testing"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func validShift() *model.Shift {
	return &model.Shift{
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 26, 0, 0, 0, 0, time.UTC),
		StartDay:  model.WeekdayMonday,
		EndDay:    model.WeekdayFriday,
		StartTime: "08:30",
		EndTime:   "13:30",
		Seats:     4,
		Hours:     80,
		CompanyID: 1,
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Shift)
		wantErr error
	}{
		{
			name:   "valid window",
			mutate: func(sh *model.Shift) {},
		},
		{
			name: "equal start and end day",
			mutate: func(sh *model.Shift) {
				sh.StartDay = model.WeekdayWednesday
				sh.EndDay = model.WeekdayWednesday
			},
			wantErr: ErrInvalidDayOrder,
		},
		{
			name: "days reversed",
			mutate: func(sh *model.Shift) {
				sh.StartDay = model.WeekdayFriday
				sh.EndDay = model.WeekdayMonday
			},
			wantErr: ErrInvalidDayOrder,
		},
		{
			name: "dates reversed",
			mutate: func(sh *model.Shift) {
				sh.StartDate, sh.EndDate = sh.EndDate, sh.StartDate
			},
			wantErr: ErrInvalidDateOrder,
		},
		{
			name: "same start and end date",
			mutate: func(sh *model.Shift) {
				sh.EndDate = sh.StartDate
			},
		},
		{
			name: "times reversed",
			mutate: func(sh *model.Shift) {
				sh.StartTime = "14:00"
				sh.EndTime = "09:00"
			},
			wantErr: ErrInvalidTimeOrder,
		},
		{
			name: "equal times",
			mutate: func(sh *model.Shift) {
				sh.StartTime = "09:00"
				sh.EndTime = "09:00"
			},
			wantErr: ErrInvalidTimeOrder,
		},
		{
			name: "unparseable time",
			mutate: func(sh *model.Shift) {
				sh.StartTime = "9am"
			},
			wantErr: ErrInvalidTimeOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := validShift()
			tt.mutate(sh)

			err := validateSchedule(sh)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
