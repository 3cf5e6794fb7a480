package http

import (
	"errors"
	"net/http"

	"escalation-srv/internal/rule"
	pkgErrors "escalation-srv/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(140001, "Wrong body", http.StatusBadRequest)
	errRuleNotFound  = pkgErrors.NewHTTPError(140002, "Rule not found", http.StatusNotFound)
	errDuplicateRule = pkgErrors.NewHTTPError(140003, "Rule id already exists", http.StatusConflict)
	errInvalidRule   = pkgErrors.NewHTTPError(140004, "Invalid rule", http.StatusBadRequest)
	errLastRule      = pkgErrors.NewHTTPError(140005, "Cannot remove the last rule", http.StatusConflict)
)

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, rule.ErrRuleNotFound):
		return errRuleNotFound
	case errors.Is(err, rule.ErrDuplicateRule):
		return errDuplicateRule
	case errors.Is(err, rule.ErrEmptyRuleSet):
		return errLastRule
	case errors.Is(err, rule.ErrInvalidRule):
		return pkgErrors.NewHTTPError(errInvalidRule.Code, err.Error(), errInvalidRule.StatusCode)
	}
	panic(err)
}
