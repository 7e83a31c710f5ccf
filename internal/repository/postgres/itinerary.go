package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"school-portal/internal/domain/itinerary"
	apperrors "school-portal/pkg/errors"
)

type ItineraryRepository struct {
	db *DB
}

func NewItineraryRepository(db *DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]itinerary.Itinerary, error) {
	query := `
		SELECT id, account_id, title, description, start_date, end_date, created_at, updated_at
		FROM itineraries
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.StoreUnavailable("itinerary lookup failed", fmt.Errorf(errFailedListItinerariesFmt, err))
	}
	defer rows.Close()

	var itineraries []itinerary.Itinerary
	var ids []uuid.UUID
	for rows.Next() {
		var it itinerary.Itinerary
		if err := rows.Scan(
			&it.ID,
			&it.AccountID,
			&it.Title,
			&it.Description,
			&it.StartDate,
			&it.EndDate,
			&it.CreatedAt,
			&it.UpdatedAt,
		); err != nil {
			return nil, apperrors.StoreUnavailable("itinerary lookup failed", fmt.Errorf(errFailedScanItineraryFmt, err))
		}
		itineraries = append(itineraries, it)
		ids = append(ids, it.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreUnavailable("itinerary lookup failed", fmt.Errorf(errIterateItinerariesFmt, err))
	}

	if len(itineraries) == 0 {
		return itineraries, nil
	}

	activities, err := r.activitiesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range itineraries {
		itineraries[i].Activities = activities[itineraries[i].ID]
	}

	return itineraries, nil
}

func (r *ItineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*itinerary.Itinerary, error) {
	query := `
		SELECT id, account_id, title, description, start_date, end_date, created_at, updated_at
		FROM itineraries
		WHERE id = $1
	`

	it := &itinerary.Itinerary{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&it.ID,
		&it.AccountID,
		&it.Title,
		&it.Description,
		&it.StartDate,
		&it.EndDate,
		&it.CreatedAt,
		&it.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errItineraryNotFound)
		}
		return nil, apperrors.StoreUnavailable("itinerary lookup failed", fmt.Errorf(errFailedGetItineraryFmt, err))
	}

	activities, err := r.activitiesFor(ctx, []uuid.UUID{it.ID})
	if err != nil {
		return nil, err
	}
	it.Activities = activities[it.ID]

	return it, nil
}

func (r *ItineraryRepository) Create(ctx context.Context, input itinerary.CreateItineraryInput) (*itinerary.Itinerary, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable("itinerary create failed", fmt.Errorf(errFailedStartTransactionFmt, err))
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO itineraries (account_id, title, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query, input.AccountID, input.Title, input.Description, input.StartDate, input.EndDate).Scan(&id)
	if err != nil {
		return nil, apperrors.StoreUnavailable("itinerary create failed", fmt.Errorf(errFailedCreateItineraryFmt, err))
	}

	if err := insertActivities(ctx, tx, id, input.Activities); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.StoreUnavailable("itinerary create failed", fmt.Errorf(errFailedCommitTransactionFmt, err))
	}

	return r.GetByID(ctx, id)
}

// Update replaces the itinerary fields and, when input.Activities is non-nil,
// the whole activity list, in one transaction.
func (r *ItineraryRepository) Update(ctx context.Context, id uuid.UUID, input itinerary.UpdateItineraryInput) (*itinerary.Itinerary, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable("itinerary update failed", fmt.Errorf(errFailedStartTransactionFmt, err))
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE itineraries
		SET title = $2, description = $3, start_date = $4, end_date = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id, input.Title, input.Description, input.StartDate, input.EndDate)
	if err != nil {
		return nil, apperrors.StoreUnavailable("itinerary update failed", fmt.Errorf(errFailedUpdateItineraryFmt, err))
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.NotFound(errItineraryNotFound)
	}

	if input.Activities != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE itinerary_id = $1`, id); err != nil {
			return nil, apperrors.StoreUnavailable("itinerary update failed", fmt.Errorf(errFailedReplaceActivitiesFmt, err))
		}
		if err := insertActivities(ctx, tx, id, input.Activities); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.StoreUnavailable("itinerary update failed", fmt.Errorf(errFailedCommitTransactionFmt, err))
	}

	return r.GetByID(ctx, id)
}

func (r *ItineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return apperrors.StoreUnavailable("itinerary delete failed", fmt.Errorf(errFailedDeleteItineraryFmt, err))
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errItineraryNotFound)
	}

	return nil
}

func insertActivities(ctx context.Context, tx pgx.Tx, itineraryID uuid.UUID, activities []itinerary.ActivityInput) error {
	query := `
		INSERT INTO activities (itinerary_id, name, date, location, notes)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, a := range activities {
		if _, err := tx.Exec(ctx, query, itineraryID, a.Name, a.Date, a.Location, a.Notes); err != nil {
			return apperrors.StoreUnavailable("itinerary write failed", fmt.Errorf(errFailedCreateActivityFmt, err))
		}
	}

	return nil
}

func (r *ItineraryRepository) activitiesFor(ctx context.Context, itineraryIDs []uuid.UUID) (map[uuid.UUID][]itinerary.Activity, error) {
	query := `
		SELECT id, itinerary_id, name, date, COALESCE(location, ''), COALESCE(notes, ''), created_at
		FROM activities
		WHERE itinerary_id = ANY($1)
		ORDER BY date, created_at
	`

	rows, err := r.db.Pool.Query(ctx, query, itineraryIDs)
	if err != nil {
		return nil, apperrors.StoreUnavailable("activity lookup failed", fmt.Errorf(errFailedListActivitiesFmt, err))
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]itinerary.Activity)
	for rows.Next() {
		var a itinerary.Activity
		if err := rows.Scan(&a.ID, &a.ItineraryID, &a.Name, &a.Date, &a.Location, &a.Notes, &a.CreatedAt); err != nil {
			return nil, apperrors.StoreUnavailable("activity lookup failed", fmt.Errorf(errFailedScanActivityFmt, err))
		}
		grouped[a.ItineraryID] = append(grouped[a.ItineraryID], a)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreUnavailable("activity lookup failed", fmt.Errorf(errIterateActivitiesFmt, err))
	}

	return grouped, nil
}
