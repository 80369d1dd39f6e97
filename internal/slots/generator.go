// Package slots вычисляет слоты записи на день по расписанию бизнеса и уже занятым временам
package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CurrentDaySchedule возвращает расписание на день недели referenceDate.
// Дата передается явно, системные часы не читаются
func CurrentDaySchedule(schedule domain.WeeklySchedule, referenceDate time.Time) (domain.DaySchedule, error) {
	key := domain.WeekdayKey(referenceDate.Weekday())

	day, ok := schedule[key]
	if !ok {
		return domain.DaySchedule{}, fmt.Errorf("%w: %s", ErrMissingWeekday, key)
	}

	return day, nil
}

// IsBusinessOpen true, если заданы и время открытия, и время закрытия
func IsBusinessOpen(day domain.DaySchedule) bool {
	return day.IsOpen()
}

// GenerateTimeSlots генерирует слоты от openTime (включительно) до closeTime (не включительно) с шагом intervalMinutes.
// Слот недоступен, только если его время в точности совпадает с одним из bookedSlots:
// длительность уже записанных услуг не учитывается.
func GenerateTimeSlots(
	openTime types.TimeOfDay,
	closeTime types.TimeOfDay,
	intervalMinutes int,
	bookedSlots []types.TimeOfDay,
) ([]domain.TimeSlot, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, intervalMinutes)
	}

	booked := make(map[types.TimeOfDay]struct{}, len(bookedSlots))
	for _, b := range bookedSlots {
		booked[b] = struct{}{}
	}

	result := make([]domain.TimeSlot, 0)
	for current := openTime; current.IsBefore(closeTime); {
		_, taken := booked[current]
		result = append(result, domain.TimeSlot{
			Time:      current,
			Available: !taken,
		})

		// шаг не должен выходить за closeTime, иначе при огромном интервале AddMinutes переполнит int
		if intervalMinutes >= closeTime.Minutes()-current.Minutes() {
			break
		}
		current = current.AddMinutes(intervalMinutes)
	}

	return result, nil
}
