package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

const partnershipCollection = "partnerships"

type PartnershipRepository struct {
	coll *mongo.Collection
}

func NewPartnershipRepository(db *mongo.Database) *PartnershipRepository {
	return &PartnershipRepository{coll: db.Collection(partnershipCollection)}
}

type mongoPartnership struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RequesterID string             `bson:"requester_id"`
	RecipientID string             `bson:"recipient_id"`
	Status      string             `bson:"status"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (m mongoPartnership) toDomain() *domain.Partnership {
	return &domain.Partnership{
		ID:          m.ID.Hex(),
		RequesterID: m.RequesterID,
		RecipientID: m.RecipientID,
		Status:      domain.PartnershipStatus(m.Status),
		CreatedAt:   unixToTime(m.CreatedAt),
		UpdatedAt:   unixToTime(m.UpdatedAt),
	}
}

func (r *PartnershipRepository) Create(ctx context.Context, p *domain.Partnership) (*domain.Partnership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPartnership{
		RequesterID: p.RequesterID,
		RecipientID: p.RecipientID,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert partnership: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PartnershipRepository) FindByID(ctx context.Context, id string) (*domain.Partnership, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPartnershipNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoPartnership
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("find partnership: %w", err)
	}
	return m.toDomain(), nil
}

func (r *PartnershipRepository) FindByParty(ctx context.Context, accountID string) ([]*domain.Partnership, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"requester_id": accountID},
		bson.M{"recipient_id": accountID},
	}}
	return r.findMany(ctx, filter)
}

// FindBetween matches the unordered pair with a single $in query on both
// sides, the canonical directionless comparison.
func (r *PartnershipRepository) FindBetween(ctx context.Context, idA, idB string, statuses ...domain.PartnershipStatus) ([]*domain.Partnership, error) {
	pair := bson.A{idA, idB}
	filter := bson.M{
		"requester_id": bson.M{"$in": pair},
		"recipient_id": bson.M{"$in": pair},
	}
	if len(statuses) > 0 {
		names := make(bson.A, len(statuses))
		for i, s := range statuses {
			names[i] = string(s)
		}
		filter["status"] = bson.M{"$in": names}
	}
	return r.findMany(ctx, filter)
}

func (r *PartnershipRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Partnership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find partnerships: %w", err)
	}
	defer cursor.Close(ctx)

	var partnerships []*domain.Partnership
	for cursor.Next(ctx) {
		var m mongoPartnership
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode partnership: %w", err)
		}
		partnerships = append(partnerships, m.toDomain())
	}
	return partnerships, cursor.Err()
}

func (r *PartnershipRepository) UpdateStatus(ctx context.Context, id string, status domain.PartnershipStatus) (*domain.Partnership, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPartnershipNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}}

	var m mongoPartnership
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("update partnership: %w", err)
	}
	return m.toDomain(), nil
}

// EnsureIndexes creates the pair-lookup indexes consulted by the job gate.
func (r *PartnershipRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "requester_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
