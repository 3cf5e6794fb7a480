package http

import (
	"errors"
	"net/http"

	"escalation-srv/internal/complaint"
	"escalation-srv/internal/escalation"
	pkgErrors "escalation-srv/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(120001, "Wrong body", http.StatusBadRequest)
	errWrongQuery        = pkgErrors.NewHTTPError(120002, "Wrong query", http.StatusBadRequest)
	errFieldRequired     = pkgErrors.NewHTTPError(120003, "Missing required field", http.StatusBadRequest)
	errInvalidPriority   = pkgErrors.NewHTTPError(120004, "Invalid priority", http.StatusBadRequest)
	errComplaintNotFound = pkgErrors.NewHTTPError(120005, "Complaint not found", http.StatusNotFound)
	errComplaintExists   = pkgErrors.NewHTTPError(120006, "Complaint already exists", http.StatusConflict)
	errMalformed         = pkgErrors.NewHTTPError(120007, "Complaint cannot be evaluated", http.StatusUnprocessableEntity)
)

// mapError panics on unknown errors so Recovery reports them.
func (h *Handler) mapError(err error) error {
	var evalErr *escalation.EvaluationError
	switch {
	case errors.Is(err, complaint.ErrFieldRequired):
		return pkgErrors.NewHTTPError(errFieldRequired.Code, err.Error(), errFieldRequired.StatusCode)
	case errors.Is(err, complaint.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, complaint.ErrComplaintNotFound):
		return errComplaintNotFound
	case errors.Is(err, complaint.ErrComplaintExists):
		return errComplaintExists
	case errors.As(err, &evalErr):
		return pkgErrors.NewHTTPError(errMalformed.Code, evalErr.Error(), errMalformed.StatusCode)
	}
	panic(err)
}
