package authz

import "school-portal/internal/domain/accesscard"

// Evaluate reports whether any card satisfies any rule in the set: OR across
// cards, OR across rules. It is pure; given the same cards and rules it
// always returns the same answer.
//
// Invalid cards (a Student card with zero enrollments) never match, even
// when the role string would. Unrecognized condition kinds never match.
// Empty card sets and empty rule sets evaluate to false.
func Evaluate(cards []accesscard.AccessCard, set RuleSet) bool {
	for _, card := range cards {
		if !card.Valid() {
			continue
		}
		for _, rule := range set.Rules {
			if ruleMatches(rule, card) {
				return true
			}
		}
	}
	return false
}

func ruleMatches(rule Rule, card accesscard.AccessCard) bool {
	switch rule.Kind {
	case ConditionRoles:
		for _, role := range rule.Roles {
			if role == card.Role {
				return true
			}
		}
	}
	// Fail closed on kinds this evaluator does not understand.
	return false
}
