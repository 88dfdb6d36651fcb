package service

import (
	"fmt"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
)

// Owned is implemented by resources that belong to exactly one user.
type Owned interface {
	OwnerID() int
}

// AuthorizeOwner allows the operation only when the authenticated user owns
// the resource. The action verb ("update", "delete") appears in the denial
// message. Callers must have resolved the resource before invoking the guard,
// so an absent resource is reported as not-found rather than not-owned.
func AuthorizeOwner(u *model.User, res Owned, action string) error {
	if res.OwnerID() != u.ID {
		return &ForbiddenError{
			Message: fmt.Sprintf("Access denied, a user can only %s their own courses", action),
		}
	}
	return nil
}
