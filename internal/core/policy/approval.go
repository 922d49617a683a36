// Package policy implements the committee's approval matrix: which approver
// role(s) a transaction needs depending on its amount and category.
package policy

import "github.com/shopspring/decimal"

// Approver role names from the authorization matrix.
const (
	RoleChair         = "Chair"
	RoleSchoolAdmin   = "School Admin"
	RoleCommitteeVote = "Committee Vote"
)

// largeAmountThreshold is the KD figure above which a second approver is
// required. The comparison is a strict greater-than: exactly 100 KD still
// needs only the Chair.
var largeAmountThreshold = decimal.NewFromInt(100)

// CategoryLookup reports whether a category name is known to the ledger in
// either section.
type CategoryLookup func(name string) bool

// ApprovalPolicy decides required approvers for ledger postings.
//
// VoteAdvisoryOnly preserves the committee's historical behavior: a
// "Committee Vote" requirement is treated as satisfied by any actor, because
// the system has no way to confirm a vote actually took place. Setting it to
// false makes the vote requirement reject like any other role check.
type ApprovalPolicy struct {
	VoteAdvisoryOnly bool
}

// RequiredApprovers returns the approver roles needed for a posting of the
// given amount against the given category. An unknown category always routes
// to a committee vote, regardless of amount.
func (p ApprovalPolicy) RequiredApprovers(amount decimal.Decimal, category string, known CategoryLookup) []string {
	if known == nil || !known(category) {
		return []string{RoleCommitteeVote}
	}
	if amount.GreaterThan(largeAmountThreshold) {
		return []string{RoleChair, RoleSchoolAdmin}
	}
	return []string{RoleChair}
}

// Satisfies reports whether the acting approver meets the required set.
// The check only rejects when a specific role list is required and the actor
// is not in it.
func (p ApprovalPolicy) Satisfies(required []string, actor string) bool {
	if p.VoteAdvisoryOnly && len(required) == 1 && required[0] == RoleCommitteeVote {
		return true
	}
	for _, role := range required {
		if actor == role {
			return true
		}
	}
	return false
}
