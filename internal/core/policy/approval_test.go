package policy_test

import (
	"testing"

	"github.com/aymanouf/committee-finance/internal/core/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func knownCategories(names ...string) policy.CategoryLookup {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestRequiredApprovers_AmountThreshold(t *testing.T) {
	p := policy.ApprovalPolicy{VoteAdvisoryOnly: true}
	known := knownCategories("Yearbook")

	tests := []struct {
		name   string
		amount string
		want   []string
	}{
		{"well under threshold", "25.00", []string{policy.RoleChair}},
		{"exactly 100 stays single approver", "100.00", []string{policy.RoleChair}},
		{"just over 100 requires both", "100.01", []string{policy.RoleChair, policy.RoleSchoolAdmin}},
		{"large amount requires both", "500", []string{policy.RoleChair, policy.RoleSchoolAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := p.RequiredApprovers(amount, "Yearbook", known)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredApprovers_UnknownCategoryRoutesToVote(t *testing.T) {
	p := policy.ApprovalPolicy{VoteAdvisoryOnly: true}
	known := knownCategories("Yearbook")

	// Amount is irrelevant once the category is unknown.
	got := p.RequiredApprovers(decimal.NewFromInt(5000), "Brand New Category", known)
	assert.Equal(t, []string{policy.RoleCommitteeVote}, got)
}

func TestSatisfies(t *testing.T) {
	p := policy.ApprovalPolicy{VoteAdvisoryOnly: true}

	assert.True(t, p.Satisfies([]string{policy.RoleChair}, policy.RoleChair))
	assert.False(t, p.Satisfies([]string{policy.RoleChair}, "Treasurer"))
	assert.True(t, p.Satisfies([]string{policy.RoleChair, policy.RoleSchoolAdmin}, policy.RoleSchoolAdmin))
	assert.False(t, p.Satisfies([]string{policy.RoleChair, policy.RoleSchoolAdmin}, "Events Coordinator"))

	// Advisory vote requirement accepts any actor.
	assert.True(t, p.Satisfies([]string{policy.RoleCommitteeVote}, "Treasurer"))
}

func TestSatisfies_StrictVoteMode(t *testing.T) {
	p := policy.ApprovalPolicy{VoteAdvisoryOnly: false}

	assert.False(t, p.Satisfies([]string{policy.RoleCommitteeVote}, "Treasurer"))
	assert.True(t, p.Satisfies([]string{policy.RoleCommitteeVote}, policy.RoleCommitteeVote))
}
