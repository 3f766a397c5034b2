package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

const applicationsCollection = "applications"

// ApplicationRepository implements ports.ApplicationRepository on a MongoDB
// collection. The unique compound index on (job_id, applicant_id) is the
// duplicate-apply guard: concurrent inserts for the same pair race on the
// index, never on application code.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return domain.Storagef("insert application", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var app domain.Application
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, domain.Storagef("find application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{"applicant_id": applicantID})
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{"job_id": jobID})
}

func (r *ApplicationRepository) CountByApplicant(ctx context.Context, applicantID string, status domain.ApplicationStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"applicant_id": applicantID}
	if status != "" {
		query["status"] = string(status)
	}
	n, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, domain.Storagef("count applications", err)
	}
	return n, nil
}

func (r *ApplicationRepository) CountByJobs(ctx context.Context, jobIDs []string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"job_id": bson.M{"$in": jobIDs}})
	if err != nil {
		return 0, domain.Storagef("count applications by jobs", err)
	}
	return n, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return domain.Storagef("update application status", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) list(ctx context.Context, query bson.M) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, domain.Storagef("list applications", err)
	}
	defer cur.Close(ctx)

	apps := make([]*domain.Application, 0)
	for cur.Next(ctx) {
		var app domain.Application
		if err := cur.Decode(&app); err != nil {
			return nil, domain.Storagef("decode application", err)
		}
		a := app
		apps = append(apps, &a)
	}
	if err := cur.Err(); err != nil {
		return nil, domain.Storagef("iterate applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "applied_at", Value: -1}}},
	})
	if err != nil {
		return domain.Storagef("ensure application indexes", err)
	}
	return nil
}
