package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	// Существующий интервал 20.12 - 27.12
	interval := &AvailabilityInterval{
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    StatusBooked,
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "полное совпадение",
			start: date(2024, 12, 20),
			end:   date(2024, 12, 27),
			want:  true,
		},
		{
			name:  "частичное пересечение с конца",
			start: date(2024, 12, 25),
			end:   date(2024, 12, 30),
			want:  true,
		},
		{
			name:  "частичное пересечение с начала",
			start: date(2024, 12, 15),
			end:   date(2024, 12, 22),
			want:  true,
		},
		{
			name:  "новый интервал полностью внутри",
			start: date(2024, 12, 22),
			end:   date(2024, 12, 25),
			want:  true,
		},
		{
			name:  "новый интервал полностью накрывает",
			start: date(2024, 12, 15),
			end:   date(2024, 12, 31),
			want:  true,
		},
		{
			name:  "границы включительные: начало в день окончания",
			start: date(2024, 12, 27),
			end:   date(2024, 12, 30),
			want:  true,
		},
		{
			name:  "границы включительные: окончание в день начала",
			start: date(2024, 12, 15),
			end:   date(2024, 12, 20),
			want:  true,
		},
		{
			name:  "строго раньше",
			start: date(2024, 12, 10),
			end:   date(2024, 12, 19),
			want:  false,
		},
		{
			name:  "строго позже",
			start: date(2024, 12, 28),
			end:   date(2024, 12, 31),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.Overlaps(tt.start, tt.end))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	available := &AvailabilityInterval{Status: StatusAvailable}
	booked := &AvailabilityInterval{Status: StatusBooked}

	assert.True(t, available.IsAvailable())
	assert.False(t, booked.IsAvailable())
}

func TestNights(t *testing.T) {
	interval := &AvailabilityInterval{
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
	}

	assert.Equal(t, 7, interval.Nights())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusAvailable))
	assert.True(t, IsValidStatus(StatusBooked))
	assert.True(t, IsValidStatus(StatusBlocked))
	assert.True(t, IsValidStatus(StatusMaintenance))
	assert.False(t, IsValidStatus(IntervalStatus("pending")))
	assert.False(t, IsValidStatus(IntervalStatus("")))
}

func TestIntervalUpdateIsEmpty(t *testing.T) {
	empty := &IntervalUpdate{}
	assert.True(t, empty.IsEmpty())

	status := StatusBlocked
	withStatus := &IntervalUpdate{Status: &status}
	assert.False(t, withStatus.IsEmpty())
}
