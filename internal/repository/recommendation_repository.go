package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-success-portal/internal/models"
)

// RecommendationRepository manages persistence for recommendation entries.
type RecommendationRepository struct {
	db *sqlx.DB
}

// NewRecommendationRepository constructs a RecommendationRepository.
func NewRecommendationRepository(db *sqlx.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// List returns every recommendation.
func (r *RecommendationRepository) List(ctx context.Context) ([]models.Recommendation, error) {
	const query = `SELECT id, title, major, type, url, description FROM recommendations`
	var recs []models.Recommendation
	if err := r.db.SelectContext(ctx, &recs, query); err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}

// MatchByMajor returns recommendations for an exact major. No wildcard here.
func (r *RecommendationRepository) MatchByMajor(ctx context.Context, major string) ([]models.Recommendation, error) {
	const query = `SELECT id, title, major, type, url, description FROM recommendations WHERE major = $1`
	var recs []models.Recommendation
	if err := r.db.SelectContext(ctx, &recs, query, major); err != nil {
		return nil, fmt.Errorf("match recommendations: %w", err)
	}
	return recs, nil
}

// FindByID fetches one recommendation.
func (r *RecommendationRepository) FindByID(ctx context.Context, id string) (*models.Recommendation, error) {
	const query = `SELECT id, title, major, type, url, description FROM recommendations WHERE id = $1`
	var rec models.Recommendation
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts a recommendation.
func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	const query = `INSERT INTO recommendations (id, title, major, type, url, description)
        VALUES (:id, :title, :major, :type, :url, :description)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("create recommendation: %w", err)
	}
	return nil
}

// Update rewrites a recommendation. Returns sql.ErrNoRows when no row matched.
func (r *RecommendationRepository) Update(ctx context.Context, rec *models.Recommendation) error {
	const query = `UPDATE recommendations SET title = :title, major = :major, type = :type,
        url = :url, description = :description WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("update recommendation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update recommendation: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a recommendation. Returns sql.ErrNoRows when nothing matched.
func (r *RecommendationRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM recommendations WHERE id = $1"
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
