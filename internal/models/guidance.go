package models

// WildcardAll matches any major or status level when stored on a guidance row.
const WildcardAll = "All"

// Guidance is an advisory rule scoped by major, standing and GPA range.
type Guidance struct {
	ID          string  `db:"id"`
	MinGPA      float64 `db:"min_gpa"`
	MaxGPA      float64 `db:"max_gpa"`
	StatusLevel string  `db:"status_level"`
	Major       string  `db:"major"`
	Content     string  `db:"content"`
}

// GuidanceMatch captures the dashboard predicate inputs for a student.
// Matching itself runs in SQL; this bundles the bound parameters.
type GuidanceMatch struct {
	Major  string
	Status string
	GPA    float64
}
