package http

import (
	"errors"
	"net/http"

	"escalation-srv/internal/complaint"
	"escalation-srv/internal/monitor"
	pkgErrors "escalation-srv/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(130001, "Wrong body", http.StatusBadRequest)
	errAlertNotFound     = pkgErrors.NewHTTPError(130002, "Alert not found", http.StatusNotFound)
	errInvalidLevel      = pkgErrors.NewHTTPError(130003, "Invalid target level", http.StatusBadRequest)
	errInvalidTrigger    = pkgErrors.NewHTTPError(130004, "Invalid triggered_by", http.StatusBadRequest)
	errFieldRequired     = pkgErrors.NewHTTPError(130005, "Missing required field", http.StatusBadRequest)
	errComplaintNotFound = pkgErrors.NewHTTPError(130006, "Complaint not found", http.StatusNotFound)
)

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, monitor.ErrAlertNotFound):
		return errAlertNotFound
	case errors.Is(err, monitor.ErrInvalidLevel):
		return errInvalidLevel
	case errors.Is(err, monitor.ErrInvalidTrigger):
		return errInvalidTrigger
	case errors.Is(err, monitor.ErrFieldRequired):
		return errFieldRequired
	case errors.Is(err, complaint.ErrComplaintNotFound):
		return errComplaintNotFound
	}
	panic(err)
}
