package http

import (
	"fmt"
	"strings"
	"time"

	"escalation-srv/internal/complaint"
	"escalation-srv/internal/model"
	pkgErrors "escalation-srv/pkg/errors"
	"escalation-srv/pkg/paginator"
)

type submitReq struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	CreatedAt   *time.Time `json:"created_at"`
}

// validate reports every bad field at once.
func (r submitReq) validate() *pkgErrors.ValidationErrorCollector {
	coll := pkgErrors.NewValidationErrorCollector()
	if strings.TrimSpace(r.Title) == "" {
		coll.Add(pkgErrors.NewValidationError(errFieldRequired.Code, "title", "is required"))
	}
	if strings.TrimSpace(r.Category) == "" {
		coll.Add(pkgErrors.NewValidationError(errFieldRequired.Code, "category", "is required"))
	}
	switch p := model.Priority(strings.ToLower(strings.TrimSpace(r.Priority))); {
	case p == "":
		coll.Add(pkgErrors.NewValidationError(errFieldRequired.Code, "priority", "is required"))
	case !p.IsValid():
		coll.Add(pkgErrors.NewValidationError(errInvalidPriority.Code, "priority", fmt.Sprintf("unknown value %q", r.Priority)))
	}
	return coll
}

func (r submitReq) toInput() complaint.SubmitInput {
	ip := complaint.SubmitInput{
		ID:          strings.TrimSpace(r.ID),
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    model.Priority(strings.ToLower(strings.TrimSpace(r.Priority))),
	}
	if r.CreatedAt != nil {
		ip.CreatedAt = *r.CreatedAt
	}
	return ip
}

type listReq struct {
	paginator.Query
	Status   []string `form:"status"`
	Priority []string `form:"priority"`
	Category []string `form:"category"`
}

func (r listReq) toInput() complaint.ListInput {
	ip := complaint.ListInput{}
	for _, s := range splitValues(r.Status) {
		ip.Statuses = append(ip.Statuses, model.Status(s))
	}
	for _, p := range splitValues(r.Priority) {
		ip.Priorities = append(ip.Priorities, model.Priority(p))
	}
	ip.Categories = splitValues(r.Category)
	return ip
}

// splitValues accepts both repeated params and comma separated lists.
func splitValues(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

type listResp struct {
	Complaints []model.Complaint   `json:"complaints"`
	Paginator  paginator.Paginator `json:"paginator"`
}

func newListResp(cs []model.Complaint, q paginator.Query) listResp {
	page, meta := paginator.Paginate(cs, q)
	return listResp{Complaints: page, Paginator: meta}
}
