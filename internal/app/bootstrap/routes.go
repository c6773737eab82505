// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminfeature "github.com/gracegate/churchhub/internal/app/features/admin"
	auditfeature "github.com/gracegate/churchhub/internal/app/features/auditlog"
	authfeature "github.com/gracegate/churchhub/internal/app/features/auth"
	churchesfeature "github.com/gracegate/churchhub/internal/app/features/churches"
	healthfeature "github.com/gracegate/churchhub/internal/app/features/health"
	auditstore "github.com/gracegate/churchhub/internal/app/store/audit"
	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/auditlog"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/authz"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/mailer"
	"github.com/gracegate/churchhub/internal/app/system/ratelimit"
	"github.com/gracegate/churchhub/internal/app/system/uploads"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// ChurchHub builds the shared infrastructure (error translator, token
// manager, bearer middleware, elevation gate, audit logger, mailer,
// upload store, login limiter) and mounts the JSON feature routers:
// health, auth, owner-scoped church management, the public directory,
// and the admin approval workflow.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.ChurchHubMongoDatabase
	prod := coreCfg.Env == "prod"

	resp := httpjson.NewTranslator(logger, prod)

	tokens, err := sysauth.NewTokens(appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(db)
	mw := sysauth.NewMiddleware(tokens, users, resp, logger)
	gate := authz.NewAdminGate(users, resp, logger)

	auditLog := auditlog.New(auditstore.New(db), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	mail, err := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		Enabled:  appCfg.MailEnabled,
	}, logger)
	if err != nil {
		logger.Error("mailer init failed", zap.Error(err))
		return nil, err
	}

	uploadStore, err := uploads.NewLocal(appCfg.UploadDir, appCfg.UploadURLPrefix)
	if err != nil {
		logger.Error("upload store init failed", zap.Error(err))
		return nil, err
	}

	limiter := ratelimit.NewLoginLimiterWithConfig(
		appCfg.LoginIPLimit, appCfg.LoginIPWindow,
		appCfg.LoginEmailLimit, appCfg.LoginEmailWindow,
	)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ChurchHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded files (avatars) with pre-compressed file support
	r.Handle(appCfg.UploadURLPrefix+"/*", fileserver.Handler(appCfg.UploadURLPrefix, uploadStore.BasePath()))

	// Accounts: signup, login, self-service profile
	authHandler := authfeature.NewHandler(db, resp, auditLog, tokens, mail, uploadStore, limiter, appCfg.SiteName, logger)
	r.Mount("/auth", authfeature.Routes(authHandler, mw))

	// Owner-scoped church management and the public directory
	churchesHandler := churchesfeature.NewHandler(db, resp, auditLog, logger)
	r.Mount("/dashboard/churches", churchesfeature.Routes(churchesHandler, mw))
	r.Mount("/dashboard/public/churches", churchesfeature.PublicRoutes(churchesHandler))

	// Administrator approval workflow and audit trail
	adminHandler := adminfeature.NewHandler(db, resp, auditLog, mail, appCfg.SiteName, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, mw, gate))

	auditHandler := auditfeature.NewHandler(db, resp, logger)
	r.Mount("/admin/audit", auditfeature.Routes(auditHandler, mw, gate))

	return r, nil
}
