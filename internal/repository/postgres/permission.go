package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"school-portal/internal/authz"
	apperrors "school-portal/pkg/errors"
)

// PermissionRepository is the authz.Registry backed by the permissions
// table. Lookup is exact-match on the (resource_type, resource_name)
// composite key; there is no wildcard or hierarchical resolution.
type PermissionRepository struct {
	db *DB
}

func NewPermissionRepository(db *DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Lookup(ctx context.Context, resourceType, resourceName string) (authz.RuleSet, error) {
	query := `
		SELECT rules
		FROM permissions
		WHERE resource_type = $1 AND resource_name = $2
	`

	var raw []byte
	err := r.db.Pool.QueryRow(ctx, query, resourceType, resourceName).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing record is a configuration gap, distinct from a
			// present-but-empty rule set.
			return authz.RuleSet{}, apperrors.NoPermissionConfigured(resourceType, resourceName)
		}
		return authz.RuleSet{}, apperrors.StoreUnavailable("permission lookup failed", fmt.Errorf(errFailedLookupPermissionFmt, err))
	}

	var set authz.RuleSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return authz.RuleSet{}, apperrors.StoreUnavailable("permission lookup failed", fmt.Errorf(errFailedDecodeRulesFmt, err))
	}

	return set, nil
}
