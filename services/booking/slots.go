package booking

import "fmt"

// Business day bounds. Slots run every half hour from opening up to,
// but not including, the closing hour: "09:00" through "18:30".
const (
	openingHour = 9
	closingHour = 19
)

var timeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	var slots []string
	for hour := openingHour; hour < closingHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

// TimeSlots returns the ordered sequence of bookable time points for a
// business day. The sequence is date-independent.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotCount is the number of bookable slots per business day.
func SlotCount() int {
	return len(timeSlots)
}

// SlotIndex returns the ordinal index of a slot string within the
// day's sequence, or -1 if the time is not a valid slot.
func SlotIndex(start string) int {
	for i, slot := range timeSlots {
		if slot == start {
			return i
		}
	}
	return -1
}
