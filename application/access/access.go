// Package access decides whether a principal may change a resource.
//
// The rule is: the principal is an administrator, or the principal's email
// equals the resource owner's email after trimming and case folding.
// Existence is always checked before ownership, so callers probing a missing
// id see NotFound rather than Forbidden.
package access

import (
	"strings"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	"github.com/muhammadheryan/classifieds/utils/errors"
)

// Resource is anything owned by exactly one user.
type Resource interface {
	OwnerEmail() string
}

type Evaluator interface {
	CanModify(principal *model.Principal, resource Resource) bool
	Authorize(principal *model.Principal, resource Resource) error
}

type evaluator struct{}

func NewEvaluator() Evaluator {
	return evaluator{}
}

func (evaluator) CanModify(principal *model.Principal, resource Resource) bool {
	if principal == nil || resource == nil {
		return false
	}
	if principal.IsAdmin() {
		return true
	}
	owner := foldEmail(resource.OwnerEmail())
	return owner != "" && owner == foldEmail(principal.Email)
}

// Authorize walks Authenticated -> Exists -> Authorized and returns the first failure.
func (e evaluator) Authorize(principal *model.Principal, resource Resource) error {
	if principal == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if resource == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !e.CanModify(principal, resource) {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}

func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
