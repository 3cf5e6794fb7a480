package rule

import "errors"

var (
	ErrEmptyRuleSet  = errors.New("rule set has no rules")
	ErrRuleNotFound  = errors.New("rule not found")
	ErrDuplicateRule = errors.New("rule id already exists")
	ErrInvalidRule   = errors.New("invalid rule")
)
