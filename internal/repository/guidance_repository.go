package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-success-portal/internal/models"
)

// GuidanceRepository manages persistence for guidance rules.
type GuidanceRepository struct {
	db *sqlx.DB
}

// NewGuidanceRepository constructs a GuidanceRepository.
func NewGuidanceRepository(db *sqlx.DB) *GuidanceRepository {
	return &GuidanceRepository{db: db}
}

// List returns every guidance rule.
func (r *GuidanceRepository) List(ctx context.Context) ([]models.Guidance, error) {
	const query = `SELECT id, min_gpa, max_gpa, status_level, major, content FROM guidance`
	var rules []models.Guidance
	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, fmt.Errorf("list guidance: %w", err)
	}
	return rules, nil
}

// Match returns guidance rules applying to a student. Major and status match
// their stored value or the "All" wildcard; the GPA must fall inside the
// rule's inclusive range.
func (r *GuidanceRepository) Match(ctx context.Context, m models.GuidanceMatch) ([]models.Guidance, error) {
	const query = `SELECT id, min_gpa, max_gpa, status_level, major, content FROM guidance
        WHERE (major = $1 OR major = 'All')
        AND (status_level = $2 OR status_level = 'All')
        AND $3 BETWEEN min_gpa AND max_gpa`
	var rules []models.Guidance
	if err := r.db.SelectContext(ctx, &rules, query, m.Major, m.Status, m.GPA); err != nil {
		return nil, fmt.Errorf("match guidance: %w", err)
	}
	return rules, nil
}

// FindByID fetches one guidance rule.
func (r *GuidanceRepository) FindByID(ctx context.Context, id string) (*models.Guidance, error) {
	const query = `SELECT id, min_gpa, max_gpa, status_level, major, content FROM guidance WHERE id = $1`
	var rule models.Guidance
	if err := r.db.GetContext(ctx, &rule, query, id); err != nil {
		return nil, err
	}
	return &rule, nil
}

// Create inserts a guidance rule.
func (r *GuidanceRepository) Create(ctx context.Context, rule *models.Guidance) error {
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	const query = `INSERT INTO guidance (id, min_gpa, max_gpa, status_level, major, content)
        VALUES (:id, :min_gpa, :max_gpa, :status_level, :major, :content)`
	if _, err := r.db.NamedExecContext(ctx, query, rule); err != nil {
		return fmt.Errorf("create guidance: %w", err)
	}
	return nil
}

// Update rewrites a guidance rule. Returns sql.ErrNoRows when no row matched.
func (r *GuidanceRepository) Update(ctx context.Context, rule *models.Guidance) error {
	const query = `UPDATE guidance SET min_gpa = :min_gpa, max_gpa = :max_gpa, status_level = :status_level,
        major = :major, content = :content WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, rule)
	if err != nil {
		return fmt.Errorf("update guidance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update guidance: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a guidance rule. Returns sql.ErrNoRows when nothing matched.
func (r *GuidanceRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM guidance WHERE id = $1"
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete guidance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete guidance: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
