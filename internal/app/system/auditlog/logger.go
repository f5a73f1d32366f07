// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/store/audit"
)

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for career lifecycle events (create, update,
	// publish, unpublish, draft, question generation).
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Admin string
	// Security controls logging for suspicious-input detections.
	// Values: "all", "db", "log", "off"
	Security string
}

// Logger provides convenience methods for logging audit events.
// It logs to both MongoDB (via audit.Store) and structured logs (via zap).
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}

	if event.OrgID != "" {
		fields = append(fields, zap.String("org_id", event.OrgID))
	}
	if event.ActorEmail != "" {
		fields = append(fields, zap.String("actor_email", event.ActorEmail))
	}
	if event.CareerID != "" {
		fields = append(fields, zap.String("career_id", event.CareerID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
// Logging destination is controlled by config: "all", "db", "log", or "off".
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAdmin:
		setting = l.config.Admin
	case audit.CategorySecurity:
		setting = l.config.Security
	default:
		setting = "all"
	}

	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if setting == "all" || setting == "db" {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// --- Career lifecycle events ---

// CareerCreated logs a new career record, draft or published.
func (l *Logger) CareerCreated(ctx context.Context, r *http.Request, actorEmail, orgID, careerID, status string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventCareerCreated,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		CareerID:   careerID,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
		Details: map[string]string{
			"status": status,
		},
	})
}

// CareerUpdated logs an edit to an existing career.
func (l *Logger) CareerUpdated(ctx context.Context, r *http.Request, actorEmail, orgID, careerID, fieldsChanged string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventCareerUpdated,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		CareerID:   careerID,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
		Details: map[string]string{
			"fields_changed": fieldsChanged,
		},
	})
}

// CareerPublished logs a career going live.
func (l *Logger) CareerPublished(ctx context.Context, r *http.Request, actorEmail, orgID, careerID string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventCareerPublished,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		CareerID:   careerID,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
	})
}

// CareerUnpublished logs a career being taken down.
func (l *Logger) CareerUnpublished(ctx context.Context, r *http.Request, actorEmail, orgID, careerID string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventCareerUnpublished,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		CareerID:   careerID,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
	})
}

// CareerDeleted logs a career being removed outright.
func (l *Logger) CareerDeleted(ctx context.Context, r *http.Request, actorEmail, orgID, careerID string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventCareerDeleted,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		CareerID:   careerID,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
	})
}

// MemberSeen logs a member identity being resolved into a session.
func (l *Logger) MemberSeen(ctx context.Context, r *http.Request, actorEmail, orgID string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventMemberSeen,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
	})
}

// DraftDiscarded logs a wizard draft being deleted, either explicitly or
// after a successful publish.
func (l *Logger) DraftDiscarded(ctx context.Context, r *http.Request, actorEmail, orgID, reason string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventDraftDiscarded,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
		Details: map[string]string{
			"reason": reason,
		},
	})
}

// QuestionsGenerated logs an AI interview question generation call.
func (l *Logger) QuestionsGenerated(ctx context.Context, r *http.Request, actorEmail, orgID, jobTitle string, count int) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventQuestionsGenerated,
		OrgID:      orgID,
		ActorEmail: actorEmail,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    true,
		Details: map[string]string{
			"job_title": jobTitle,
			"count":     strconv.Itoa(count),
		},
	})
}

// --- Security events ---

// SuspiciousInput logs a request whose payload matched a known XSS pattern.
// The payload itself is never stored; only which field tripped the check.
func (l *Logger) SuspiciousInput(ctx context.Context, r *http.Request, actorEmail, orgID, field string) {
	l.Log(ctx, audit.Event{
		Category:      audit.CategorySecurity,
		EventType:     audit.EventSuspiciousInput,
		OrgID:         orgID,
		ActorEmail:    actorEmail,
		IP:            getClientIP(r),
		UserAgent:     r.UserAgent(),
		Success:       false,
		FailureReason: "input matched xss pattern",
		Details: map[string]string{
			"field": field,
		},
	})
}

