package calculator

import (
	"fmt"

	"github.com/mmynk/godutch/internal/models"
)

// NewParticipants returns the list a go-dutch calculation starts with: one
// person who has paid nothing.
func NewParticipants() []models.Participant {
	return []models.Participant{{Name: "Person 1"}}
}

// AddParticipant returns a copy of ps with "Person {len+1}" appended.
func AddParticipant(ps []models.Participant) []models.Participant {
	out := make([]models.Participant, len(ps), len(ps)+1)
	copy(out, ps)
	return append(out, models.Participant{Name: fmt.Sprintf("Person %d", len(ps)+1)})
}

// RemoveLastParticipant returns a copy of ps without its last entry.
// An empty list stays empty.
func RemoveLastParticipant(ps []models.Participant) []models.Participant {
	if len(ps) == 0 {
		return nil
	}
	out := make([]models.Participant, len(ps)-1)
	copy(out, ps)
	return out
}
