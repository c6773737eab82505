// internal/app/features/admin/handler.go
package admin

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/auditlog"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/mailer"
)

// Handler serves the administrator-only account workflows.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Resp     *httpjson.Translator
	AuditLog *auditlog.Logger
	Users    *userstore.Store
	Mailer   *mailer.Mailer
	SiteName string
}

func NewHandler(db *mongo.Database, resp *httpjson.Translator, audit *auditlog.Logger, mail *mailer.Mailer, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Resp:     resp,
		AuditLog: audit,
		Users:    userstore.New(db),
		Mailer:   mail,
		SiteName: siteName,
	}
}
