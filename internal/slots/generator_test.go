package slots

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func times(slots []domain.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time.String()
	}
	return out
}

func openDay(openAt, closeAt string) domain.DaySchedule {
	return domain.DaySchedule{Open: ptr.Ptr(tod(openAt)), Close: ptr.Ptr(tod(closeAt))}
}

func testWeek() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		"monday":    openDay("09:00", "18:00"),
		"tuesday":   openDay("09:00", "18:00"),
		"wednesday": openDay("10:00", "12:00"),
		"thursday":  openDay("09:00", "20:00"),
		"friday":    openDay("09:00", "20:00"),
		"saturday":  openDay("10:00", "14:00"),
		"sunday":    {},
	}
}

var (
	sunday    = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
)

func TestGenerateTimeSlots_Scenarios(t *testing.T) {
	cases := []struct {
		name          string
		open, close   string
		interval      int
		booked        []string
		wantTimes     []string
		wantAvailable []bool
	}{
		{
			name:          "whole hours, nothing booked",
			open:          "09:00",
			close:         "11:00",
			interval:      30,
			wantTimes:     []string{"09:00", "09:30", "10:00", "10:30"},
			wantAvailable: []bool{true, true, true, true},
		},
		{
			name:          "one booked slot",
			open:          "09:00",
			close:         "11:00",
			interval:      30,
			booked:        []string{"10:00"},
			wantTimes:     []string{"09:00", "09:30", "10:00", "10:30"},
			wantAvailable: []bool{true, true, false, true},
		},
		{
			name:      "open equals close",
			open:      "09:00",
			close:     "09:00",
			interval:  30,
			wantTimes: []string{},
		},
		{
			name:      "open after close",
			open:      "18:00",
			close:     "09:00",
			interval:  30,
			wantTimes: []string{},
		},
		{
			name:          "span not divisible by interval",
			open:          "09:45",
			close:         "10:20",
			interval:      30,
			wantTimes:     []string{"09:45", "10:15"},
			wantAvailable: []bool{true, true},
		},
		{
			name:          "booked times outside range and duplicates are ignored",
			open:          "09:00",
			close:         "10:00",
			interval:      20,
			booked:        []string{"08:00", "09:20", "09:20", "10:00", "09:10"},
			wantTimes:     []string{"09:00", "09:20", "09:40"},
			wantAvailable: []bool{true, false, true},
		},
		{
			name:          "interval larger than span",
			open:          "09:00",
			close:         "09:30",
			interval:      90,
			wantTimes:     []string{"09:00"},
			wantAvailable: []bool{true},
		},
		{
			name:          "minute overflow rolls into hour",
			open:          "09:50",
			close:         "12:00",
			interval:      45,
			wantTimes:     []string{"09:50", "10:35", "11:20"},
			wantAvailable: []bool{true, true, true},
		},
		{
			name:          "last slot before midnight",
			open:          "22:00",
			close:         "23:59",
			interval:      60,
			wantTimes:     []string{"22:00", "23:00"},
			wantAvailable: []bool{true, true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			booked := make([]types.TimeOfDay, len(c.booked))
			for i, b := range c.booked {
				booked[i] = tod(b)
			}

			got, err := GenerateTimeSlots(tod(c.open), tod(c.close), c.interval, booked)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, c.wantTimes, times(got))

			for i, want := range c.wantAvailable {
				assert.Equal(t, want, got[i].Available, "slot %s", got[i].Time)
			}
		})
	}
}

func TestGenerateTimeSlots_InvalidInterval(t *testing.T) {
	for _, interval := range []int{0, -1, -30} {
		got, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), interval, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
		assert.Nil(t, got)
	}
}

func TestGenerateTimeSlots_HugeInterval(t *testing.T) {
	for _, interval := range []int{540, 1440, math.MaxInt32, math.MaxInt} {
		got, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), interval, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00"}, times(got), "interval %d", interval)
	}

	got, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), 539, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "17:59"}, times(got))
}

func TestGenerateTimeSlots_Properties(t *testing.T) {
	opens := []string{"00:00", "07:15", "09:00", "09:45", "12:30"}
	closes := []string{"09:00", "10:20", "13:00", "18:00", "23:59"}
	intervals := []int{1, 7, 15, 30, 45, 60, 90}

	for _, o := range opens {
		for _, c := range closes {
			for _, n := range intervals {
				openTime, closeTime := tod(o), tod(c)

				got, err := GenerateTimeSlots(openTime, closeTime, n, nil)
				require.NoError(t, err)

				if !openTime.IsBefore(closeTime) {
					assert.Empty(t, got, "%s-%s/%d", o, c, n)
					continue
				}

				require.NotEmpty(t, got, "%s-%s/%d", o, c, n)
				assert.Equal(t, openTime, got[0].Time)

				for i, slot := range got {
					assert.True(t, slot.Available)
					assert.False(t, slot.Time.IsBefore(openTime))
					assert.True(t, slot.Time.IsBefore(closeTime))
					if i > 0 {
						assert.True(t, got[i-1].Time.IsBefore(slot.Time), "strictly ascending")
						assert.Equal(t, n, slot.Time.Minutes()-got[i-1].Time.Minutes())
					}
				}

				// Следующий шаг после последнего слота уже не раньше закрытия
				last := got[len(got)-1].Time
				assert.False(t, last.AddMinutes(n).IsBefore(closeTime))
			}
		}
	}
}

func TestGenerateTimeSlots_OnlyExactlyBookedSlotIsUnavailable(t *testing.T) {
	all, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), 30, nil)
	require.NoError(t, err)

	for _, target := range all {
		got, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), 30, []types.TimeOfDay{target.Time})
		require.NoError(t, err)

		for _, slot := range got {
			assert.Equal(t, slot.Time != target.Time, slot.Available, "booked %s, slot %s", target.Time, slot.Time)
		}
	}
}

func TestGenerateTimeSlots_Idempotent(t *testing.T) {
	booked := []types.TimeOfDay{tod("10:00"), tod("13:30")}

	first, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), 30, booked)
	require.NoError(t, err)
	second, err := GenerateTimeSlots(tod("09:00"), tod("18:00"), 30, booked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Бронь длительностью 60 минут на 10:00 не блокирует слот 10:30:
// сравнивается только время начала
func TestGenerateTimeSlots_IgnoresBookingDuration(t *testing.T) {
	got, err := GenerateTimeSlots(tod("09:00"), tod("12:00"), 30, []types.TimeOfDay{tod("10:00")})
	require.NoError(t, err)

	byTime := make(map[string]bool, len(got))
	for _, s := range got {
		byTime[s.Time.String()] = s.Available
	}

	assert.False(t, byTime["10:00"])
	assert.True(t, byTime["10:30"])
}

func TestIsBusinessOpen(t *testing.T) {
	assert.False(t, IsBusinessOpen(domain.DaySchedule{}))
	assert.True(t, IsBusinessOpen(openDay("09:00", "18:00")))
	assert.False(t, IsBusinessOpen(domain.DaySchedule{Open: ptr.Ptr(tod("09:00"))}))
	assert.False(t, IsBusinessOpen(domain.DaySchedule{Close: ptr.Ptr(tod("18:00"))}))
}

func TestCurrentDaySchedule(t *testing.T) {
	week := testWeek()

	day, err := CurrentDaySchedule(week, sunday)
	require.NoError(t, err)
	assert.Equal(t, week["sunday"], day)
	assert.False(t, IsBusinessOpen(day))

	day, err = CurrentDaySchedule(week, wednesday)
	require.NoError(t, err)
	assert.Equal(t, "10:00", day.Open.String())
	assert.Equal(t, "12:00", day.Close.String())

	// День недели берется из самой даты, время суток не влияет
	day, err = CurrentDaySchedule(week, wednesday.Add(23*time.Hour+59*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, week["wednesday"], day)
}

func TestCurrentDaySchedule_MissingWeekday(t *testing.T) {
	week := testWeek()
	delete(week, "sunday")

	_, err := CurrentDaySchedule(week, sunday)
	assert.ErrorIs(t, err, ErrMissingWeekday)
	assert.Contains(t, err.Error(), "sunday")
}
