// Package guard decides whether an actor may request an action on a property.
//
// It answers ownership questions only. Whether the property's state permits the
// action is decided by the lifecycle package.
package guard

import (
	"github.com/gofrs/uuid/v5"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/model"
)

// Authorize returns nil when actor may perform action on p, or a Forbidden-class error.
// Rules are evaluated in order and the first failing one wins.
func Authorize(p model.Property, actor uuid.UUID, action model.Action) error {
	if actor == uuid.Nil {
		return errs.ErrUnauthorized
	}
	switch action {
	case model.ActionTokenize, model.ActionList, model.ActionUnlist, model.ActionTransfer, model.ActionAmend:
		if actor != p.Owner {
			return errs.ErrNotOwner
		}
		return nil
	case model.ActionBid:
		if actor == p.Owner {
			return errs.ErrSelfBid
		}
		return nil
	default:
		return errs.Validation("unknown action %q", action)
	}
}
