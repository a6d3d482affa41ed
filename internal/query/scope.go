package query

import (
	"fmt"

	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

// ScopeViolation describes rows returned by a scoped fetch that the
// requesting user does not own. The repository query is expected to have
// scoped the result set already; finding foreign rows here means that
// scoping is broken, which must surface loudly rather than be papered over
// by dropping rows.
type ScopeViolation struct {
	Collection string
	UserID     int64
	RowIDs     []int64
}

func (v *ScopeViolation) Error() string {
	return fmt.Sprintf("scope violation: %s fetch for user %d returned %d foreign row(s)", v.Collection, v.UserID, len(v.RowIDs))
}

// VerifyOwnership asserts that every row in a professional-scoped fetch is
// owned by userID. ownerOf extracts (rowID, ownerID) from a row. The rows
// are returned untouched and in order; callers for admin fetches skip this
// check entirely. On failure the returned error wraps ErrScopeViolation so
// it maps to a distinct error code.
func VerifyOwnership[T any](collection string, rows []T, userID int64, ownerOf func(T) (int64, int64)) error {
	var foreign []int64
	for _, row := range rows {
		rowID, ownerID := ownerOf(row)
		if ownerID != userID {
			foreign = append(foreign, rowID)
		}
	}
	if len(foreign) == 0 {
		return nil
	}

	violation := &ScopeViolation{Collection: collection, UserID: userID, RowIDs: foreign}
	return appErrors.Wrap(violation, appErrors.ErrScopeViolation.Code, appErrors.ErrScopeViolation.Status, appErrors.ErrScopeViolation.Message)
}
