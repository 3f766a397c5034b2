package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

const jobsCollection = "jobs"

// JobRepository implements ports.JobRepository on a MongoDB collection.
// Job documents are stored in the domain shape via its bson tags.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

func (r *JobRepository) Insert(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		return domain.Storagef("insert job", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.Job
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, domain.Storagef("find job", err)
	}
	return &job, nil
}

func (r *JobRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Job, error) {
	out := make(map[string]*domain.Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, domain.Storagef("find jobs", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var job domain.Job
		if err := cur.Decode(&job); err != nil {
			return nil, domain.Storagef("decode job", err)
		}
		j := job
		out[j.ID] = &j
	}
	if err := cur.Err(); err != nil {
		return nil, domain.Storagef("iterate jobs", err)
	}
	return out, nil
}

// ListActive returns active jobs matching filter, newest first. Search terms
// are regex-quoted so they match as literal substrings.
func (r *JobRepository) ListActive(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_active": true}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"company": re},
			bson.M{"description": re},
		}
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}
	if filter.JobType != "" {
		query["job_type"] = string(filter.JobType)
	}

	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	return r.decodeJobs(ctx, query, opts)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	return r.decodeJobs(ctx, bson.M{"employer_id": employerID}, opts)
}

func (r *JobRepository) CountByEmployer(ctx context.Context, employerID string, activeOnly bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"employer_id": employerID}
	if activeOnly {
		query["is_active"] = true
	}
	n, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, domain.Storagef("count jobs", err)
	}
	return n, nil
}

func (r *JobRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": active}})
	if err != nil {
		return domain.Storagef("set job active", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) decodeJobs(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Job, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, domain.Storagef("list jobs", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var job domain.Job
		if err := cur.Decode(&job); err != nil {
			return nil, domain.Storagef("decode job", err)
		}
		j := job
		jobs = append(jobs, &j)
	}
	if err := cur.Err(); err != nil {
		return nil, domain.Storagef("iterate jobs", err)
	}
	return jobs, nil
}

func (r *JobRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employer_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "posted_at", Value: -1}}},
	})
	if err != nil {
		return domain.Storagef("ensure job indexes", err)
	}
	return nil
}
