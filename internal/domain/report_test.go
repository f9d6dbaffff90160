package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportType_Valid(t *testing.T) {
	assert.True(t, ReportTypeLost.Valid())
	assert.True(t, ReportTypeFound.Valid())
	assert.False(t, ReportType("misplaced").Valid())
	assert.False(t, ReportType("").Valid())
}

func TestClaimStatus_ValidFor(t *testing.T) {
	for _, s := range []ClaimStatus{ClaimNone, ClaimPending, ClaimApproved} {
		assert.True(t, s.ValidFor(ReportTypeFound), "%s on found", s)
		assert.False(t, s.ValidFor(ReportTypeLost), "%s on lost", s)
	}
	for _, s := range []ClaimStatus{ClaimNotFoundYet, ClaimHasBeenFound} {
		assert.True(t, s.ValidFor(ReportTypeLost), "%s on lost", s)
		assert.False(t, s.ValidFor(ReportTypeFound), "%s on found", s)
	}
	assert.False(t, ClaimStatus("bogus").ValidFor(ReportTypeFound))
	assert.False(t, ClaimNone.ValidFor(ReportType("misplaced")))
}

func TestInitialClaimStatus(t *testing.T) {
	assert.Equal(t, ClaimNone, InitialClaimStatus(ReportTypeFound))
	assert.Equal(t, ClaimNotFoundYet, InitialClaimStatus(ReportTypeLost))
}

func TestSearchText(t *testing.T) {
	r := Report{ItemName: "Wallet", Description: "brown leather wallet"}
	assert.Equal(t, "Wallet brown leather wallet", r.SearchText())
}
