// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request body limits.
// AppConfig is everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer token configuration
	JWTSecret string        // Signing secret for issued tokens (must be strong in production)
	JWTExpiry time.Duration // Token lifetime (default 24h)

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From address (e.g., "ChurchHub <noreply@churchhub.app>")
	MailEnabled  bool   // When false, sends are logged and skipped

	// Upload storage configuration
	UploadDir       string // Local path for stored files (e.g., "./uploads")
	UploadURLPrefix string // URL prefix for serving stored files (e.g., "/files")

	// SiteName appears in outbound email.
	SiteName string

	// AdminEmail names an account promoted to administrator at startup.
	// Blank disables the bootstrap.
	AdminEmail string

	// Audit logging settings ("all", "db", "log", or "off")
	AuditLogAuth  string
	AuditLogAdmin string

	// Audit retention. Events older than AuditRetention are pruned in
	// the background; zero disables pruning.
	AuditRetention     time.Duration
	AuditPruneInterval time.Duration

	// Login rate limiting
	LoginIPLimit     int
	LoginIPWindow    time.Duration
	LoginEmailLimit  int
	LoginEmailWindow time.Duration
}
