// internal/app/features/admin/approve.go
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/mailer"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/domain/models"
)

type approveResponse struct {
	Status string `json:"status"`
	Data   struct {
		User *models.User `json:"user"`
	} `json:"data"`
}

// HandleApproveUser grants the elevation flag to the named account.
// Approval is idempotent: approving an already-approved account succeeds
// and returns the current record.
func (h *Handler) HandleApproveUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		h.Resp.Fail(w, r, apperr.New(apperr.KindBadRequest, "invalid user id"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "user approve")
	defer cancel()

	user, err := h.Users.Approve(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Resp.Fail(w, r, apperr.NotFound("no user found with that id"))
			return
		}
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	if ident, ok := sysauth.CurrentUser(r); ok {
		h.AuditLog.UserApproved(ctx, r, ident.ID, user.ID, user.Email)
	}

	// The notification is best effort; approval stands even if it fails.
	email := mailer.BuildApprovalEmail(mailer.ApprovalEmailData{
		SiteName:  h.SiteName,
		FirstName: user.FirstName,
	})
	email.To = user.Email
	if err := h.Mailer.Send(email); err != nil {
		h.Log.Warn("approval email failed", zap.String("email", user.Email), zap.Error(err))
	}

	resp := approveResponse{Status: "success"}
	resp.Data.User = user
	httpjson.OK(w, resp)
}
