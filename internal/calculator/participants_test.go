package calculator

import (
	"testing"

	"github.com/mmynk/godutch/internal/models"
)

func TestParticipantList(t *testing.T) {
	ps := NewParticipants()
	if len(ps) != 1 || ps[0].Name != "Person 1" || ps[0].AmountPaid != 0 {
		t.Fatalf("NewParticipants = %+v, want one empty Person 1", ps)
	}

	ps[0].Name = "Alice"
	grown := AddParticipant(ps)
	if len(grown) != 2 || grown[1].Name != "Person 2" {
		t.Fatalf("AddParticipant = %+v, want Person 2 appended", grown)
	}
	if grown[0].Name != "Alice" {
		t.Errorf("existing participant changed: %+v", grown[0])
	}

	grown[1].AmountPaid = 10
	if len(ps) != 1 {
		t.Errorf("AddParticipant modified its input: %+v", ps)
	}

	shrunk := RemoveLastParticipant(grown)
	if len(shrunk) != 1 || shrunk[0].Name != "Alice" {
		t.Errorf("RemoveLastParticipant = %+v, want [Alice]", shrunk)
	}
	if len(grown) != 2 {
		t.Errorf("RemoveLastParticipant modified its input: %+v", grown)
	}

	if got := RemoveLastParticipant(nil); len(got) != 0 {
		t.Errorf("RemoveLastParticipant(nil) = %+v, want empty", got)
	}
}

func TestAddParticipant_NamesByPosition(t *testing.T) {
	var ps []models.Participant
	for i := 0; i < 3; i++ {
		ps = AddParticipant(ps)
	}
	ps = RemoveLastParticipant(ps)
	ps = AddParticipant(ps)

	want := []string{"Person 1", "Person 2", "Person 3"}
	for i, p := range ps {
		if p.Name != want[i] {
			t.Errorf("participant %d = %q, want %q", i, p.Name, want[i])
		}
	}
}
