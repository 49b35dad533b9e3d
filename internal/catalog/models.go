// Package catalog holds the embedded prophecy-cycle dataset and its lookups.
package catalog

// Cycle is a named interval attributed to one tradition.
// Tradition is a free-text label, matched against TraditionRecord.Name by
// string equality rather than by id. Years are signed (negative = BCE).
// Duration is authored and may differ from EndYear - StartYear.
type Cycle struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Tradition   string   `json:"tradition" yaml:"tradition" validate:"required"`
	StartYear   int      `json:"start_year" yaml:"start_year"`
	EndYear     int      `json:"end_year" yaml:"end_year" validate:"gtefield=StartYear"`
	Duration    float64  `json:"duration" yaml:"duration" validate:"gt=0"`
	Description string   `json:"description" yaml:"description" validate:"required"`
	KeyProphecy string   `json:"key_prophecy" yaml:"key_prophecy"`
	Leader      string   `json:"leader" yaml:"leader"`
	Source      string   `json:"source" yaml:"source" validate:"required"`
	References  []string `json:"references" yaml:"references" validate:"dive,required"`
}

// Span returns EndYear - StartYear. It may differ from Duration.
func (c Cycle) Span() int {
	return c.EndYear - c.StartYear
}

// Contains reports whether year is one of the cycle's boundaries.
func (c Cycle) Contains(year int) bool {
	return c.StartYear == year || c.EndYear == year
}

// TraditionRecord is the authored metadata for a tradition.
// Name is the label cycles are grouped under; Title is the display heading.
type TraditionRecord struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Title        string   `json:"title" yaml:"title"`
	Origin       string   `json:"origin" yaml:"origin" validate:"required"`
	Description  string   `json:"description" yaml:"description" validate:"required"`
	KeyTexts     []string `json:"key_texts" yaml:"key_texts" validate:"required,min=1,dive,required"`
	Significance string   `json:"significance" yaml:"significance" validate:"required"`
}

// TimelineEvent is a single dated occurrence. Events have no identity of
// their own; equality is positional.
type TimelineEvent struct {
	Year         int    `json:"year" yaml:"year"`
	Event        string `json:"event" yaml:"event" validate:"required"`
	Tradition    string `json:"tradition" yaml:"tradition"`
	Significance string `json:"significance" yaml:"significance"`
}

// ConvergenceEntry summarizes one cycle in the convergence view.
type ConvergenceEntry struct {
	Tradition   string  `json:"tradition" yaml:"tradition" validate:"required"`
	Start       int     `json:"start" yaml:"start"`
	End         int     `json:"end" yaml:"end" validate:"gtefield=Start"`
	Duration    float64 `json:"duration" yaml:"duration" validate:"gt=0"`
	Convergence string  `json:"convergence" yaml:"convergence"`
}

// Convergence is the cross-tradition summary for a single terminal year.
type Convergence struct {
	Year        int                `json:"year" yaml:"year"`
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description" yaml:"description"`
	Entries     []ConvergenceEntry `json:"cycles" yaml:"cycles"`
}

// Dataset is the raw authored input to New.
type Dataset struct {
	Cycles      []Cycle
	Traditions  []TraditionRecord
	Events      []TimelineEvent
	Convergence Convergence
}
