package models

// Teaching days and the fixed period strings of the scheduling service.
var (
	Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	Periods = []string{
		"9:00-10:00",
		"10:00-11:00",
		"11:00-12:00",
		"12:00-1:00",
		"2:00-3:00",
		"3:00-4:00",
	}
)

// Slot discriminants. The type decides which optional fields are populated.
const (
	SlotRegular   = "regular"
	SlotBreak     = "break"
	SlotPractical = "practical"
)

// Slot is one (day, period) cell of the grid.
type Slot struct {
	Subject     string `json:"subject"`
	Faculty     string `json:"faculty"`
	Room        string `json:"room"`
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Grid maps day to period to slot. Empty cells are nil entries, never
// missing keys once normalized.
type Grid map[string]map[string]*Slot

// Normalize guarantees every (day, period) pair has exactly one entry,
// filling gaps with nil. Unknown days or periods already present are kept.
func (g Grid) Normalize() Grid {
	if g == nil {
		g = Grid{}
	}
	for _, day := range Days {
		if g[day] == nil {
			g[day] = make(map[string]*Slot, len(Periods))
		}
		for _, period := range Periods {
			if _, ok := g[day][period]; !ok {
				g[day][period] = nil
			}
		}
	}
	return g
}

// EmptyGrid returns a fully normalized grid with no occupied slots.
func EmptyGrid() Grid {
	return Grid{}.Normalize()
}

// Timetable is a generated schedule; the published one is the singleton
// consumers render.
type Timetable struct {
	ID        int64                  `json:"id,omitempty"`
	Grid      Grid                   `json:"timetable"`
	Score     float64                `json:"score,omitempty"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
	CreatedAt string                 `json:"created_at,omitempty"`
}

// TimetableOption is one candidate produced by a generate call.
type TimetableOption struct {
	Grid    Grid                   `json:"timetable"`
	Score   float64                `json:"score"`
	Metrics map[string]interface{} `json:"metrics,omitempty"`
}

// GenerateRequest carries the optimizer inputs. Breaks and practicals are
// included because the scheduling service holds no copy of them.
type GenerateRequest struct {
	Constraints map[string]interface{} `json:"constraints"`
	Breaks      []Break                `json:"breaks"`
	Practicals  []Practical            `json:"practicals"`
}

// GenerateResult is the optimizer's answer: ranked options plus the stored
// identifier of the best one.
type GenerateResult struct {
	Timetables  []TimetableOption      `json:"timetables"`
	TimetableID int64                  `json:"timetable_id"`
	GeneratedAt string                 `json:"generated_at"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// RescheduleOutcome pairs the rescheduled timetable with the service's
// informational message.
type RescheduleOutcome struct {
	Timetable *Timetable
	Message   string
}
