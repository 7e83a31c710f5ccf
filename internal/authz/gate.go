package authz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"school-portal/internal/domain/accesscard"
	apperrors "school-portal/pkg/errors"
)

// Identity is the authenticated caller, as produced by the session verifier.
// The gate re-derives the card set from the account on every request; it
// never trusts a client-asserted "current card".
type Identity struct {
	AccountID uuid.UUID
	Email     string
}

// DenyReason classifies why a request was denied. The HTTP layer collapses
// the two policy denials into one response; the reasons exist for logging.
type DenyReason string

const (
	DenyUnauthenticated   DenyReason = "unauthenticated"
	DenyNoPermission      DenyReason = "no_permission_configured"
	DenyRulesNotSatisfied DenyReason = "rules_not_satisfied"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason // empty when Allowed
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// CardSource provides an account's access cards in stable creation order,
// with school metadata and enrollment counts already resolved.
type CardSource interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]accesscard.AccessCard, error)
}

// Registry looks up the rule set for a (resourceType, resourceName) pair.
// Exact-match only. A missing record is apperrors.ErrNoPermissionConfigured;
// a present record with zero rules is a valid, deny-everything set.
type Registry interface {
	Lookup(ctx context.Context, resourceType, resourceName string) (RuleSet, error)
}

// Gate decides, per request, whether an identity's cards satisfy the rules
// attached to a resource. It holds no mutable state; concurrent Authorize
// calls are independent.
type Gate struct {
	cards    CardSource
	registry Registry
}

func NewGate(cards CardSource, registry Registry) *Gate {
	return &Gate{cards: cards, registry: registry}
}

// Authorize runs the full check: identity → cards → permission → evaluation.
// A nil error with Allowed=false is a policy deny; a non-nil error means a
// lookup failed and no policy decision was reached. The only path to Allow
// is a successful evaluator pass.
func (g *Gate) Authorize(ctx context.Context, identity *Identity, resourceType, resourceName string) (Decision, error) {
	if identity == nil || identity.AccountID == uuid.Nil {
		return deny(DenyUnauthenticated), nil
	}

	// Card and permission lookups are independent reads; issue them
	// concurrently and join before evaluation.
	var (
		cards []accesscard.AccessCard
		set   RuleSet
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		cards, err = g.cards.ListByAccount(groupCtx, identity.AccountID)
		return err
	})
	group.Go(func() error {
		var err error
		set, err = g.registry.Lookup(groupCtx, resourceType, resourceName)
		return err
	})

	if err := group.Wait(); err != nil {
		if errors.Is(err, apperrors.ErrNoPermissionConfigured) {
			return deny(DenyNoPermission), nil
		}
		return Decision{}, err
	}

	// An empty card list is not itself a denial; it denies here because no
	// card can satisfy any rule.
	if !Evaluate(cards, set) {
		return deny(DenyRulesNotSatisfied), nil
	}

	return allow(), nil
}
