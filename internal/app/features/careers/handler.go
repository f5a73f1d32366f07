// internal/app/features/careers/handler.go
package careers

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/features/errors"
	"github.com/launchpadjia/careerhub/internal/app/store/careers"
	"github.com/launchpadjia/careerhub/internal/app/store/drafts"
	"github.com/launchpadjia/careerhub/internal/app/system/auditlog"
)

// Handler is the feature-level entry point for the career lifecycle API.
type Handler struct {
	DB      *mongo.Database
	Log     *zap.Logger
	ErrLog  *errors.ErrorLogger
	Audit   *auditlog.Logger
	Careers *careerstore.Store
	Drafts  *draftstore.Store
}

// NewHandler constructs a careers Handler bound to a DB and logger. The audit
// logger may be nil, which disables audit recording.
func NewHandler(db *mongo.Database, logger *zap.Logger, audit *auditlog.Logger) *Handler {
	return &Handler{
		DB:      db,
		Log:     logger,
		ErrLog:  errors.NewErrorLogger(logger),
		Audit:   audit,
		Careers: careerstore.New(db),
		Drafts:  draftstore.New(db),
	}
}
