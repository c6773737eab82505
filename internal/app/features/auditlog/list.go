// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	auditstore "github.com/gracegate/churchhub/internal/app/store/audit"
	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/paging"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
)

// eventView is the JSON projection of a stored audit event.
type eventView struct {
	ID            string            `json:"id"`
	Timestamp     time.Time         `json:"timestamp"`
	Category      string            `json:"category"`
	EventType     string            `json:"eventType"`
	UserID        string            `json:"userId,omitempty"`
	ActorID       string            `json:"actorId,omitempty"`
	IP            string            `json:"ip,omitempty"`
	UserAgent     string            `json:"userAgent,omitempty"`
	Success       bool              `json:"success"`
	FailureReason string            `json:"failureReason,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}

type listResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	HasNext bool   `json:"hasNext"`
	Data    struct {
		Events []eventView `json:"events"`
	} `json:"data"`
}

// ServeList returns the audit trail newest first, filterable by
// category, event type, subject and date range.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	filter := auditstore.QueryFilter{
		Category:  strings.TrimSpace(r.URL.Query().Get("category")),
		EventType: strings.TrimSpace(r.URL.Query().Get("type")),
		Limit:     p.LimitPlusOne(),
		Offset:    p.Skip(),
	}

	var vs validate.Violations
	vs.OneOf("category", filter.Category, auditstore.CategoryAuth, auditstore.CategoryAdmin)

	if s := strings.TrimSpace(r.URL.Query().Get("user")); s != "" {
		if id, err := primitive.ObjectIDFromHex(s); err == nil {
			filter.UserID = &id
		} else {
			vs.Add("user", "user must be a valid id")
		}
	}

	if s := strings.TrimSpace(r.URL.Query().Get("from")); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.StartTime = &t
		} else {
			vs.Add("from", "from must be a YYYY-MM-DD date")
		}
	}
	if s := strings.TrimSpace(r.URL.Query().Get("to")); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			end := t.Add(24*time.Hour - time.Second)
			filter.EndTime = &end
		} else {
			vs.Add("to", "to must be a YYYY-MM-DD date")
		}
	}

	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "audit list")
	defer cancel()

	events, err := h.Events.Query(ctx, filter)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindInternal, "could not load audit events", err))
		return
	}
	hasNext := paging.Trim(&events, p)

	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, toView(e))
	}

	resp := listResponse{
		Status:  "success",
		Results: len(views),
		Page:    p.Number,
		HasNext: hasNext,
	}
	resp.Data.Events = views
	httpjson.OK(w, resp)
}

func toView(e auditstore.Event) eventView {
	v := eventView{
		ID:            e.ID.Hex(),
		Timestamp:     e.Timestamp,
		Category:      e.Category,
		EventType:     e.EventType,
		IP:            e.IP,
		UserAgent:     e.UserAgent,
		Success:       e.Success,
		FailureReason: e.FailureReason,
		Details:       e.Details,
	}
	if e.UserID != nil {
		v.UserID = e.UserID.Hex()
	}
	if e.ActorID != nil {
		v.ActorID = e.ActorID.Hex()
	}
	return v
}
