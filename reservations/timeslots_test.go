package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotEnumeration(t *testing.T) {
	slots := TimeSlots()

	assert.Len(t, slots, 11)
	assert.Equal(t, TimeSlot{Value: "17:00", Label: "5:00 PM"}, slots[0])
	assert.Equal(t, TimeSlot{Value: "18:30", Label: "6:30 PM"}, slots[3])
	assert.Equal(t, TimeSlot{Value: "22:00", Label: "10:00 PM"}, slots[len(slots)-1])
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("19:00"))
	assert.True(t, IsValidTimeSlot("22:00"))
	assert.False(t, IsValidTimeSlot("22:30"))
	assert.False(t, IsValidTimeSlot("16:30"))
	assert.False(t, IsValidTimeSlot("7:00 PM"))
}

func TestTimeSlotsReturnsACopy(t *testing.T) {
	slots := TimeSlots()
	slots[0].Value = "mutated"

	assert.Equal(t, "17:00", TimeSlots()[0].Value)
}
