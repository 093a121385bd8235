package service

import (
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
)

// DefaultSlotStep is the grid on which candidate start times are generated.
const DefaultSlotStep = 30 * time.Minute

// ComputeAvailableSlots returns the bookable start times inside one working
// hours window, stepping from its start by step while start+duration still
// fits. A candidate is rejected when it falls in
// [booking.Start-duration, booking.End) of any NEW booking, so a slot ending
// exactly where a booking starts is also rejected. Cancelled bookings are ignored.
func ComputeAvailableSlots(workingHours entity.WorkingHours, booked []entity.Appointment, duration, step time.Duration) []entity.TimeOfDay {
	slots := make([]entity.TimeOfDay, 0)
	if duration <= 0 {
		return slots
	}
	if step <= 0 {
		step = DefaultSlotStep
	}

	length := entity.TimeOfDay(duration / time.Minute)
	stride := entity.TimeOfDay(step / time.Minute)
	if stride == 0 {
		stride = 1
	}

	for candidate := workingHours.StartTime; candidate+length <= workingHours.EndTime; candidate += stride {
		if isSlotFree(candidate, length, booked) {
			slots = append(slots, candidate)
		}
	}

	return slots
}

func isSlotFree(candidate, length entity.TimeOfDay, booked []entity.Appointment) bool {
	for i := range booked {
		appointment := &booked[i]
		if !appointment.IsNew() {
			continue
		}
		if candidate >= appointment.StartTime-length && candidate < appointment.EndTime {
			return false
		}
	}
	return true
}
