package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

const activityCollection = "activity_log"

// ActivityRepository is the append-only sink for the audit trail. Entries are
// written by the background recorder and never updated.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ActorID   string             `bson:"actor_id"`
	ScopeID   string             `bson:"scope_id,omitempty"`
	Action    string             `bson:"action"`
	SubjectID string             `bson:"subject_id,omitempty"`
	Detail    string             `bson:"detail,omitempty"`
	Timestamp int64              `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		ActorID:   activity.ActorID,
		ScopeID:   activity.ScopeID,
		Action:    activity.Action,
		SubjectID: activity.SubjectID,
		Detail:    activity.Detail,
		Timestamp: activity.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
