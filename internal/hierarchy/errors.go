package hierarchy

import "errors"

var (
	ErrGroupNotFound  = errors.New("no stakeholder group for level")
	ErrDuplicateLevel = errors.New("more than one stakeholder group for level")
	ErrNoGroups       = errors.New("hierarchy has no stakeholder groups")
)
