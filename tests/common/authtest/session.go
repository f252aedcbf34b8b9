//go:build unit || e2e

package authtest

import (
	"testing"

	"github.com/KingCastle/Javan/internal/domain/user"
	"github.com/KingCastle/Javan/tests/common/dbtest"

	"github.com/google/uuid"
)

// CreateAndSignIn stores a user and returns a token for it, standing in for
// the external sign-in flow.
func CreateAndSignIn(t *testing.T, db dbtest.DBLike, h *JWTHelper, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role.String())
	return userID, h.GenerateToken(t, userID, role)
}
