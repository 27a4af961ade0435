package models

import (
	"encoding/json"
	"testing"
)

func TestSessionLinkJSON(t *testing.T) {
	tests := []struct {
		name string
		link SessionLink
		want string
	}{
		{"unassigned", Unassigned(), `null`},
		{"assigned", AssignedTo("abc-123"), `"abc-123"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.link)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}

			var back SessionLink
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tt.link {
				t.Errorf("round trip = %+v, want %+v", back, tt.link)
			}
		})
	}
}

func TestSessionLinkInStruct(t *testing.T) {
	set := WorkoutSet{ID: "s1", ExerciseID: "squat", Session: Unassigned(), Reps: 5}
	data, err := json.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if got := string(raw["workout_session_id"]); got != "null" {
		t.Errorf("workout_session_id = %s, want null", got)
	}

	set.Session = AssignedTo("sess-1")
	data, err = json.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	var back WorkoutSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if id, ok := back.Session.SessionID(); !ok || id != "sess-1" {
		t.Errorf("round trip link = (%q, %v), want (\"sess-1\", true)", id, ok)
	}
}

func TestMuscleGroupValid(t *testing.T) {
	for _, g := range MuscleGroups {
		if !g.Valid() {
			t.Errorf("%s reported invalid", g)
		}
	}
	if MuscleGroup("forearm").Valid() {
		t.Error("unknown group reported valid")
	}
}
