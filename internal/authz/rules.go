package authz

import (
	"encoding/json"
	"fmt"

	"school-portal/internal/domain/accesscard"
)

// ConditionKind is the closed set of rule conditions the evaluator
// understands. Configuration may carry kinds this build does not know yet;
// those decode to ConditionUnrecognized and never match (fail-closed).
type ConditionKind string

const (
	ConditionRoles        ConditionKind = "roles"
	ConditionUnrecognized ConditionKind = "unrecognized"
)

// Rule is one condition of a permission. For the roles kind, Roles lists the
// card roles that satisfy it. Condition keeps the raw configured string so
// operators can see what an unrecognized rule actually said.
type Rule struct {
	Kind      ConditionKind
	Condition string
	Roles     []accesscard.Role
}

// RuleSet is the ordered rule collection attached to one permission record.
// A set with zero rules denies everything.
type RuleSet struct {
	Rules []Rule
}

// Wire shape of a permission's rules column:
// {"rules": [{"condition": "roles", "roles": ["Admin", "Instructor"]}]}
type ruleSetDoc struct {
	Rules []ruleDoc `json:"rules"`
}

type ruleDoc struct {
	Condition string   `json:"condition"`
	Roles     []string `json:"roles"`
}

func (rs *RuleSet) UnmarshalJSON(data []byte) error {
	var doc ruleSetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode rule set: %w", err)
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for _, rd := range doc.Rules {
		rules = append(rules, decodeRule(rd))
	}
	rs.Rules = rules

	return nil
}

func (rs RuleSet) MarshalJSON() ([]byte, error) {
	doc := ruleSetDoc{Rules: make([]ruleDoc, 0, len(rs.Rules))}
	for _, r := range rs.Rules {
		rd := ruleDoc{Condition: r.Condition, Roles: make([]string, 0, len(r.Roles))}
		for _, role := range r.Roles {
			rd.Roles = append(rd.Roles, string(role))
		}
		doc.Rules = append(doc.Rules, rd)
	}
	return json.Marshal(doc)
}

func decodeRule(rd ruleDoc) Rule {
	rule := Rule{Condition: rd.Condition}

	switch rd.Condition {
	case string(ConditionRoles):
		rule.Kind = ConditionRoles
		rule.Roles = make([]accesscard.Role, 0, len(rd.Roles))
		for _, role := range rd.Roles {
			rule.Roles = append(rule.Roles, accesscard.Role(role))
		}
	default:
		rule.Kind = ConditionUnrecognized
	}

	return rule
}

// RolesRule builds a roles-condition rule. Used by seeds and tests.
func RolesRule(roles ...accesscard.Role) Rule {
	return Rule{Kind: ConditionRoles, Condition: string(ConditionRoles), Roles: roles}
}
