package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

type ownedRow struct {
	ID    int64
	Owner int64
}

func ownerOf(r ownedRow) (int64, int64) {
	return r.ID, r.Owner
}

func TestVerifyOwnershipAllOwned(t *testing.T) {
	rows := []ownedRow{{ID: 1, Owner: 7}, {ID: 2, Owner: 7}}
	assert.NoError(t, VerifyOwnership("trainees", rows, 7, ownerOf))
}

func TestVerifyOwnershipEmpty(t *testing.T) {
	assert.NoError(t, VerifyOwnership("trainees", nil, 7, ownerOf))
}

func TestVerifyOwnershipForeignRows(t *testing.T) {
	rows := []ownedRow{
		{ID: 1, Owner: 7},
		{ID: 2, Owner: 9},
		{ID: 3, Owner: 11},
	}
	err := VerifyOwnership("trainees", rows, 7, ownerOf)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrScopeViolation.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrScopeViolation.Status, appErr.Status)

	var violation *ScopeViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "trainees", violation.Collection)
	assert.Equal(t, int64(7), violation.UserID)
	assert.Equal(t, []int64{2, 3}, violation.RowIDs)
}
