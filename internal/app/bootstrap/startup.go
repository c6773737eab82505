// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	auditstore "github.com/gracegate/churchhub/internal/app/store/audit"
	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/workers"
)

// retentionWorker is started in Startup and stopped in Shutdown.
var retentionWorker *workers.AuditRetention

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("overrides", n))
	}

	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}

	if appCfg.AuditRetention > 0 {
		retentionWorker = workers.NewAuditRetention(
			auditstore.New(deps.ChurchHubMongoDatabase),
			logger,
			appCfg.AuditPruneInterval,
			appCfg.AuditRetention,
		)
		retentionWorker.Start()
	}

	return nil
}

// ensureAdmin promotes the configured account to administrator. A missing
// account is not an error: the promotion applies on a later startup once
// the account has signed up.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.ChurchHubMongoDatabase)

	n, err := users.PromoteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("promoted bootstrap admin", zap.String("email", email))
	} else {
		logger.Info("bootstrap admin already elevated or not yet registered",
			zap.String("email", email))
	}
	return nil
}
