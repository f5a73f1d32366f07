// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	careersfeature "github.com/launchpadjia/careerhub/internal/app/features/careers"
	healthfeature "github.com/launchpadjia/careerhub/internal/app/features/health"
	identityfeature "github.com/launchpadjia/careerhub/internal/app/features/identity"
	orgsfeature "github.com/launchpadjia/careerhub/internal/app/features/orgs"
	questiongenfeature "github.com/launchpadjia/careerhub/internal/app/features/questiongen"
	"github.com/launchpadjia/careerhub/internal/app/store/audit"
	"github.com/launchpadjia/careerhub/internal/app/system/auditlog"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
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
// CareerHub initializes the session store, builds the audit logger and the
// question generator, and mounts the JSON API feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	db := deps.CareerHubMongoDatabase

	auditLogger := auditlog.New(audit.New(db), logger, auditlog.Config{
		Admin:    appCfg.AuditLogAdmin,
		Security: appCfg.AuditLogSecurity,
	})

	var gen questiongenfeature.Generator
	if appCfg.GeminiAPIKey != "" {
		g, err := questiongenfeature.NewGeminiGenerator(context.Background(), appCfg.GeminiAPIKey, appCfg.QuestionModel)
		if err != nil {
			logger.Error("gemini client init failed", zap.Error(err))
			return nil, err
		}
		gen = g
	} else {
		gen = questiongenfeature.NewDisabledGenerator()
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CareerHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Sign-in and sign-out
	identityHandler := identityfeature.NewHandler(db, logger, auditLogger)
	r.Mount("/api/identity", identityfeature.Routes(identityHandler))

	// Career lifecycle: create, list, update, autosave, publish
	careersHandler := careersfeature.NewHandler(db, logger, auditLogger)
	r.Mount("/api/careers", careersfeature.Routes(careersHandler))

	// Wizard drafts scoped to the signed-in user
	r.Mount("/api/drafts", careersfeature.DraftRoutes(careersHandler))

	// Interview question generation
	questionHandler := questiongenfeature.NewHandler(gen, logger, auditLogger)
	r.Mount("/api/questions", questiongenfeature.Routes(questionHandler))

	// Organization details and membership
	orgsHandler := orgsfeature.NewHandler(db, logger)
	r.Mount("/api/orgs", orgsfeature.Routes(orgsHandler))

	return r, nil
}
