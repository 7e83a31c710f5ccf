package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"school-portal/internal/domain/accesscard"
	apperrors "school-portal/pkg/errors"
)

type AccessCardRepository struct {
	db *DB
}

func NewAccessCardRepository(db *DB) *AccessCardRepository {
	return &AccessCardRepository{db: db}
}

// ListByAccount loads an account's cards with school display metadata and
// enrollment counts in one query. Creation order keeps "default selected
// card" behavior reproducible across requests.
func (r *AccessCardRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]accesscard.AccessCard, error) {
	query := `
		SELECT
			ac.id,
			ac.account_id,
			ac.email,
			ac.role,
			ac.global,
			ac.school_id,
			COALESCE(s.name, ''),
			COALESCE(s.logo_key, ''),
			(SELECT COUNT(*) FROM enrollments e WHERE e.access_card_id = ac.id),
			ac.created_at
		FROM access_cards ac
		LEFT JOIN schools s ON ac.school_id = s.id
		WHERE ac.account_id = $1
		ORDER BY ac.created_at, ac.id
	`

	rows, err := r.db.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.StoreUnavailable("access card lookup failed", fmt.Errorf(errFailedListCardsFmt, err))
	}
	defer rows.Close()

	var cards []accesscard.AccessCard
	for rows.Next() {
		var card accesscard.AccessCard
		if err := rows.Scan(
			&card.ID,
			&card.AccountID,
			&card.Email,
			&card.Role,
			&card.Global,
			&card.SchoolID,
			&card.SchoolName,
			&card.LogoKey,
			&card.Enrollments,
			&card.CreatedAt,
		); err != nil {
			return nil, apperrors.StoreUnavailable("access card lookup failed", fmt.Errorf(errFailedScanCardFmt, err))
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreUnavailable("access card lookup failed", fmt.Errorf(errIterateCardsFmt, err))
	}

	return cards, nil
}
