package models

import "github.com/dmitrijs2005/ideae/internal/common"

// Owned is implemented by every per-user resource. The owner is kept as a
// plain id, never as a reference to the User.
type Owned interface {
	OwnerID() string
}

// Authorize allows access iff the resource belongs to identityID. A denied
// access is reported as common.ErrorNotFound so callers cannot tell a
// foreign resource from an absent one.
func Authorize(identityID string, resource Owned) error {
	if resource == nil || identityID == "" || resource.OwnerID() != identityID {
		return common.ErrorNotFound
	}
	return nil
}
