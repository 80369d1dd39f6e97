package domain

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// TimeSlot is a candidate appointment start time for one employee on one date
type TimeSlot struct {
	Time      types.TimeOfDay
	Available bool
}

// CountAvailable returns the number of slots that can still be booked
func CountAvailable(slots []TimeSlot) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}
