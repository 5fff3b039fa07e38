package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

const jobCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobCollection)}
}

type mongoCriteria struct {
	MinCGPA  float64  `bson:"min_cgpa"`
	Branches []string `bson:"branches"`
}

type mongoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID   string             `bson:"company_id"`
	CollegeID   string             `bson:"college_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Location    string             `bson:"location,omitempty"`
	CTC         float64            `bson:"ctc"`
	Deadline    int64              `bson:"deadline"`
	Criteria    mongoCriteria      `bson:"criteria"`
	Rounds      []string           `bson:"rounds"`
	Status      string             `bson:"status"`
	CreatedAt   int64              `bson:"created_at"`
}

func (m mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:          m.ID.Hex(),
		CompanyID:   m.CompanyID,
		CollegeID:   m.CollegeID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		CTC:         m.CTC,
		Deadline:    unixToTime(m.Deadline),
		Criteria:    domain.Criteria{MinCGPA: m.Criteria.MinCGPA, Branches: m.Criteria.Branches},
		Rounds:      m.Rounds,
		Status:      domain.JobStatus(m.Status),
		CreatedAt:   unixToTime(m.CreatedAt),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var deadline int64
	if !job.Deadline.IsZero() {
		deadline = job.Deadline.Unix()
	}
	doc := mongoJob{
		CompanyID:   job.CompanyID,
		CollegeID:   job.CollegeID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		CTC:         job.CTC,
		Deadline:    deadline,
		Criteria:    mongoCriteria{MinCGPA: job.Criteria.MinCGPA, Branches: job.Criteria.Branches},
		Rounds:      job.Rounds,
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) FindByCompany(ctx context.Context, companyID string) ([]*domain.Job, error) {
	return r.findMany(ctx, bson.M{"company_id": companyID})
}

func (r *JobRepository) FindOpenByCollege(ctx context.Context, collegeID string) ([]*domain.Job, error) {
	return r.findMany(ctx, bson.M{"college_id": collegeID, "status": string(domain.JobOpen)})
}

func (r *JobRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []*domain.Job
	for cursor.Next(ctx) {
		var m mongoJob
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, m.toDomain())
	}
	return jobs, cursor.Err()
}

// EnsureIndexes creates the listing indexes.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "college_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
