// internal/app/features/churches/handler.go
package churches

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	churchstore "github.com/gracegate/churchhub/internal/app/store/churches"
	"github.com/gracegate/churchhub/internal/app/system/auditlog"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
)

// Handler is the feature-level handler for church records: owner CRUD,
// element removal on the nested sequences, and the public directory.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Resp     *httpjson.Translator
	AuditLog *auditlog.Logger
	Churches *churchstore.Store
}

func NewHandler(db *mongo.Database, resp *httpjson.Translator, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Resp:     resp,
		AuditLog: audit,
		Churches: churchstore.New(db),
	}
}
