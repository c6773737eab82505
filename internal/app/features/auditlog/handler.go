// internal/app/features/auditlog/handler.go
package auditlog

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	auditstore "github.com/gracegate/churchhub/internal/app/store/audit"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
)

// Handler serves the administrator view of the audit trail.
type Handler struct {
	Events *auditstore.Store
	Resp   *httpjson.Translator
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, resp *httpjson.Translator, logger *zap.Logger) *Handler {
	return &Handler{
		Events: auditstore.New(db),
		Resp:   resp,
		Log:    logger,
	}
}
