package domain

import "fmt"

// TimeSlot is the viewing time window a visitor picks in the booking flow.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

var slotLabels = map[TimeSlot]string{
	SlotMorning:   "Morning (9:00 - 12:00)",
	SlotAfternoon: "Afternoon (12:00 - 17:00)",
	SlotEvening:   "Evening (17:00 - 20:00)",
}

// ParseTimeSlot converts a wire value into a TimeSlot.
func ParseTimeSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(s)
	if _, ok := slotLabels[slot]; !ok {
		return "", fmt.Errorf("unknown time slot %q", s)
	}
	return slot, nil
}

// Label returns the human-readable window for a slot.
func (t TimeSlot) Label() string {
	if label, ok := slotLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether the slot is one of the known windows.
func (t TimeSlot) Valid() bool {
	_, ok := slotLabels[t]
	return ok
}
