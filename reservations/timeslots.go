package reservations

import (
	"fmt"
	"time"
)

// TimeSlot pairs the wire value ("19:00") with its 12-hour display label
// ("7:00 PM").
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// timeSlots is computed once; the enumeration is a pure function of no
// input. Seatings run 17:00 through 22:00 inclusive in 30-minute steps,
// eleven slots in all.
var timeSlots = generateTimeSlots()

func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// IsValidTimeSlot reports whether value is one of the offered seatings.
func IsValidTimeSlot(value string) bool {
	for _, slot := range timeSlots {
		if slot.Value == value {
			return true
		}
	}
	return false
}

func generateTimeSlots() []TimeSlot {
	var slots []TimeSlot
	for minutes := 17 * 60; minutes <= 22*60; minutes += 30 {
		value := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
		t, _ := time.Parse("15:04", value)
		slots = append(slots, TimeSlot{
			Value: value,
			Label: t.Format("3:04 PM"),
		})
	}
	return slots
}
