package model

// Snapshot is the full persisted state, the JSON-serializable form of the
// three collections. It is what the storage collaborator loads and saves.
type Snapshot struct {
	Tasks     []Task     `json:"tasks"`
	Goals     []Goal     `json:"goals"`
	Reminders []Reminder `json:"reminders"`
}

// Normalize replaces nil collections with empty ones so a decoded snapshot
// always round-trips to the same JSON shape.
func (s *Snapshot) Normalize() {
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Reminders == nil {
		s.Reminders = []Reminder{}
	}
}
