package authz_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"school-portal/internal/authz"
	"school-portal/internal/domain/accesscard"
)

func card(role accesscard.Role, enrollments int) accesscard.AccessCard {
	return accesscard.AccessCard{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Role:        role,
		Enrollments: enrollments,
	}
}

func rolesSet(roles ...accesscard.Role) authz.RuleSet {
	return authz.RuleSet{Rules: []authz.Rule{authz.RolesRule(roles...)}}
}

func TestEvaluateEmptyCards(t *testing.T) {
	if authz.Evaluate(nil, rolesSet(accesscard.RoleAdmin)) {
		t.Fatal("no cards should never satisfy a rule set")
	}
}

func TestEvaluateEmptyRuleSet(t *testing.T) {
	cards := []accesscard.AccessCard{card(accesscard.RoleAdmin, 0)}
	if authz.Evaluate(cards, authz.RuleSet{}) {
		t.Fatal("empty rule set must deny everything")
	}
}

func TestEvaluateRoleMatch(t *testing.T) {
	cards := []accesscard.AccessCard{card(accesscard.RoleInstructor, 0)}
	if !authz.Evaluate(cards, rolesSet(accesscard.RoleAdmin, accesscard.RoleInstructor)) {
		t.Fatal("instructor card should satisfy a rule listing Instructor")
	}
}

func TestEvaluateRoleMismatch(t *testing.T) {
	cards := []accesscard.AccessCard{card(accesscard.RoleStudent, 3)}
	if authz.Evaluate(cards, rolesSet(accesscard.RoleAdmin, accesscard.RoleInstructor)) {
		t.Fatal("student card must not satisfy an Admin/Instructor rule")
	}
}

func TestEvaluateRoleMatchIsCaseSensitive(t *testing.T) {
	cards := []accesscard.AccessCard{card(accesscard.Role("admin"), 0)}
	if authz.Evaluate(cards, rolesSet(accesscard.RoleAdmin)) {
		t.Fatal("role matching must be exact, not case-folded")
	}
}

func TestEvaluateOrAcrossCards(t *testing.T) {
	// Student at school X plus Instructor at school Y: the instructor card
	// alone should grant access to an Instructor-only resource.
	schoolX, schoolY := uuid.New(), uuid.New()
	student := card(accesscard.RoleStudent, 1)
	student.SchoolID = &schoolX
	instructor := card(accesscard.RoleInstructor, 0)
	instructor.SchoolID = &schoolY

	cards := []accesscard.AccessCard{student, instructor}
	if !authz.Evaluate(cards, rolesSet(accesscard.RoleInstructor)) {
		t.Fatal("any one matching card should be enough")
	}
}

func TestEvaluateOrAcrossRules(t *testing.T) {
	set := authz.RuleSet{Rules: []authz.Rule{
		authz.RolesRule(accesscard.RoleAdmin),
		authz.RolesRule(accesscard.RoleStudent),
	}}

	cards := []accesscard.AccessCard{card(accesscard.RoleStudent, 1)}
	if !authz.Evaluate(cards, set) {
		t.Fatal("any one matching rule should be enough")
	}
}

func TestEvaluateStudentWithoutEnrollment(t *testing.T) {
	// A Student card with zero enrollments is invalid and must not count,
	// even though its role string matches the rule.
	cards := []accesscard.AccessCard{card(accesscard.RoleStudent, 0)}
	if authz.Evaluate(cards, rolesSet(accesscard.RoleStudent)) {
		t.Fatal("unenrolled student card must not satisfy a roles rule")
	}

	cards[0].Enrollments = 1
	if !authz.Evaluate(cards, rolesSet(accesscard.RoleStudent)) {
		t.Fatal("enrolled student card should satisfy the same rule")
	}
}

func TestEvaluateUnrecognizedConditionNeverGrants(t *testing.T) {
	var set authz.RuleSet
	raw := `{"rules": [{"condition": "time_window", "roles": ["Admin"]}]}`
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if set.Rules[0].Kind != authz.ConditionUnrecognized {
		t.Fatalf("expected unrecognized kind, got %q", set.Rules[0].Kind)
	}
	if set.Rules[0].Condition != "time_window" {
		t.Fatalf("raw condition should be preserved, got %q", set.Rules[0].Condition)
	}

	cards := []accesscard.AccessCard{card(accesscard.RoleAdmin, 0)}
	if authz.Evaluate(cards, set) {
		t.Fatal("unrecognized condition kind must never grant access")
	}
}

func TestEvaluateUnrecognizedConditionDoesNotPoisonSet(t *testing.T) {
	var set authz.RuleSet
	raw := `{"rules": [
		{"condition": "time_window", "roles": ["Admin"]},
		{"condition": "roles", "roles": ["Admin"]}
	]}`
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		t.Fatalf("decode: %v", err)
	}

	cards := []accesscard.AccessCard{card(accesscard.RoleAdmin, 0)}
	if !authz.Evaluate(cards, set) {
		t.Fatal("recognized rules in the same set must still evaluate")
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	cards := []accesscard.AccessCard{
		card(accesscard.RoleStudent, 0),
		card(accesscard.RoleInstructor, 0),
	}
	set := rolesSet(accesscard.RoleInstructor)

	first := authz.Evaluate(cards, set)
	for i := 0; i < 100; i++ {
		if authz.Evaluate(cards, set) != first {
			t.Fatal("evaluation must be deterministic for fixed inputs")
		}
	}
}

func TestRuleSetRoundTrip(t *testing.T) {
	set := authz.RuleSet{Rules: []authz.Rule{
		authz.RolesRule(accesscard.RoleAdmin, accesscard.RoleInstructor),
	}}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded authz.RuleSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(decoded.Rules) != 1 || decoded.Rules[0].Kind != authz.ConditionRoles {
		t.Fatalf("unexpected decoded rules: %+v", decoded.Rules)
	}
	if len(decoded.Rules[0].Roles) != 2 || decoded.Rules[0].Roles[0] != accesscard.RoleAdmin {
		t.Fatalf("unexpected decoded roles: %+v", decoded.Rules[0].Roles)
	}
}
