package service

import "diagnostic-center-api/internal/domain/entity"

// RemainingSlots returns allSlots minus bookedSlots as a set difference. The
// catalog order is kept and repeated labels appear once.
func RemainingSlots(allSlots, bookedSlots []string) []string {
	booked := make(map[string]struct{}, len(bookedSlots))
	for _, s := range bookedSlots {
		booked[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(allSlots))
	remaining := make([]string, 0, len(allSlots))
	for _, s := range allSlots {
		if _, taken := booked[s]; taken {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		remaining = append(remaining, s)
	}
	return remaining
}

// BookedSlots collects the slot labels held by appointments that still
// occupy their slot.
func BookedSlots(appointments []entity.Appointment) []string {
	slots := make([]string, 0, len(appointments))
	for _, a := range appointments {
		if a.IsCancelled() {
			continue
		}
		slots = append(slots, a.BookingSlot)
	}
	return slots
}
