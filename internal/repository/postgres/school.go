package postgres

import (
	"context"
	"fmt"

	"school-portal/internal/domain/school"
	apperrors "school-portal/pkg/errors"
)

type SchoolRepository struct {
	db *DB
}

func NewSchoolRepository(db *DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

func (r *SchoolRepository) List(ctx context.Context) ([]school.School, error) {
	query := `
		SELECT id, name, COALESCE(logo_key, ''), created_at
		FROM schools
		ORDER BY name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.StoreUnavailable("school lookup failed", fmt.Errorf(errFailedListSchoolsFmt, err))
	}
	defer rows.Close()

	var schools []school.School
	for rows.Next() {
		var s school.School
		if err := rows.Scan(&s.ID, &s.Name, &s.LogoKey, &s.CreatedAt); err != nil {
			return nil, apperrors.StoreUnavailable("school lookup failed", fmt.Errorf(errFailedScanSchoolFmt, err))
		}
		schools = append(schools, s)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreUnavailable("school lookup failed", fmt.Errorf(errIterateSchoolsFmt, err))
	}

	return schools, nil
}
