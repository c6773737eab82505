// internal/app/features/auth/handler.go
package auth

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/auditlog"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/mailer"
	"github.com/gracegate/churchhub/internal/app/system/ratelimit"
	"github.com/gracegate/churchhub/internal/app/system/uploads"
)

// Handler is the feature-level handler for account signup, login and
// self-service profile management.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Resp     *httpjson.Translator
	AuditLog *auditlog.Logger
	Users    *userstore.Store
	Tokens   *sysauth.Tokens
	Mailer   *mailer.Mailer
	Uploads  uploads.Store
	Limiter  *ratelimit.LoginLimiter
	SiteName string
}

func NewHandler(
	db *mongo.Database,
	resp *httpjson.Translator,
	audit *auditlog.Logger,
	tokens *sysauth.Tokens,
	mail *mailer.Mailer,
	up uploads.Store,
	limiter *ratelimit.LoginLimiter,
	siteName string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Resp:     resp,
		AuditLog: audit,
		Users:    userstore.New(db),
		Tokens:   tokens,
		Mailer:   mail,
		Uploads:  up,
		Limiter:  limiter,
		SiteName: siteName,
	}
}
