/*Package access provides role-based access control for the farm API.

Every authenticated request carries an Identity, parsed from a JWT
bearer token by the middleware in this package. Handlers scope their
queries and check object permissions through the Identity.
*/
package access

import (
	"github.com/gin-gonic/gin"

	"github.com/irrigo/farm-backend/model"
)

const identityKey = "_identity_"

// Identity is the authenticated caller. It is immutable and request
// scoped; there is no global role state.
type Identity struct {
	UserID uint64
	Name   string
	Role   string
}

// Privileged returns true for roles that may bypass ownership checks
// on bypass-eligible resources.
func (id Identity) Privileged() bool {
	return id.Role == model.RoleAdmin || id.Role == model.RoleManager
}

// CanAccess decides whether the caller may touch an object with the
// given effective owner. Bypass marks the resource type as eligible
// for the admin/manager override; farms are, motors and valves are
// not.
func CanAccess(id Identity, ownerID uint64, bypass bool) bool {
	if bypass && id.Privileged() {
		return true
	}
	return ownerID == id.UserID
}

// IdentityFrom returns the identity stored on the gin context by the
// middleware.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
