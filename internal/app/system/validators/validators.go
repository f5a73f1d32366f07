// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	// helper: ensure collection exists and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("careers", careersSchema())
	ensure("career_drafts", careerDraftsSchema())
	ensure("organizations", orgsSchema())
	ensure("members", membersSchema())

	// Audit events carry free-form details; just make sure the collection exists.
	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func careersSchema() bson.M {
	// Build enums from the canonical lists in the domain models so the
	// schema can never drift from what the application accepts.
	statusEnum := bson.A{models.StatusActive, models.StatusInactive}

	workSetupEnum := bson.A{}
	for _, w := range models.WorkSetups {
		workSetupEnum = append(workSetupEnum, w)
	}
	screeningEnum := bson.A{}
	for _, s := range models.ScreeningSettings {
		screeningEnum = append(screeningEnum, s)
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"id", "org_id", "job_title", "job_title_ci", "status"},
			"properties": bson.M{
				"id":           bson.M{"bsonType": "string", "minLength": 1},
				"org_id":       bson.M{"bsonType": "string", "minLength": 1},
				"job_title":    bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"job_title_ci": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},

				"status":            bson.M{"enum": statusEnum},
				"work_setup":        bson.M{"enum": workSetupEnum},
				"screening_setting": bson.M{"enum": screeningEnum},

				"minimum_salary": bson.M{"bsonType": bson.A{"double", "int", "long", "null"}},
				"maximum_salary": bson.M{"bsonType": bson.A{"double", "int", "long", "null"}},

				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": bson.A{"date", "null"}},
			},
		},
	}
}

func careerDraftsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"org_id", "user_email", "created_at", "updated_at"},
			"properties": bson.M{
				"org_id":     bson.M{"bsonType": "string", "minLength": 1},
				"user_email": bson.M{"bsonType": "string", "minLength": 1},
				"draft_data": bson.M{"bsonType": "object"},
				"current_step": bson.M{
					"bsonType": "int",
					"minimum":  models.DraftMinStep,
					"maximum":  models.DraftMaxStep,
				},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func orgsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"id", "name", "name_ci", "status"},
			"properties": bson.M{
				"id":      bson.M{"bsonType": "string", "minLength": 1},
				"name":    bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"name_ci": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"status":  bson.M{"enum": bson.A{"active", "disabled"}},
			},
		},
	}
}

func membersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "email_ci", "role"},
			"properties": bson.M{
				"name":     bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"email":    bson.M{"bsonType": "string", "minLength": 1},
				"email_ci": bson.M{"bsonType": "string", "minLength": 1},
				"role": bson.M{"enum": bson.A{
					models.MemberRoleAdmin,
					models.MemberRoleOwner,
					models.MemberRoleRecruiter,
				}},
				"org_id":     bson.M{"bsonType": "string"},
				"created_at": bson.M{"bsonType": "date"},
				"last_seen":  bson.M{"bsonType": "date"},
			},
		},
	}
}
