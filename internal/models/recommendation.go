package models

// Recommendation points a student at a resource for their major.
// Unlike guidance, matching is exact on major with no wildcard.
type Recommendation struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Major       string `db:"major"`
	Type        string `db:"type"`
	URL         string `db:"url"`
	Description string `db:"description"`
}
