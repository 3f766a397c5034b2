package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on a MongoDB collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// mongoUser is the stored shape. The uuid entity id is the document _id.
type mongoUser struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Name         string    `bson:"name"`
	UserType     string    `bson:"user_type"`
	Title        string    `bson:"title,omitempty"`
	Bio          string    `bson:"bio,omitempty"`
	Location     string    `bson:"location,omitempty"`
	Company      string    `bson:"company,omitempty"`
	Skills       []string  `bson:"skills"`
	Experience   string    `bson:"experience,omitempty"`
	Education    string    `bson:"education,omitempty"`
	ProfileImage string    `bson:"profile_image,omitempty"`
	Resume       string    `bson:"resume,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		UserType:     string(u.UserType),
		Title:        u.Title,
		Bio:          u.Bio,
		Location:     u.Location,
		Company:      u.Company,
		Skills:       u.Skills,
		Experience:   u.Experience,
		Education:    u.Education,
		ProfileImage: u.ProfileImage,
		Resume:       u.Resume,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

func (m mongoUser) toDomain() *domain.User {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		UserType:     domain.UserType(m.UserType),
		Title:        m.Title,
		Bio:          m.Bio,
		Location:     m.Location,
		Company:      m.Company,
		Skills:       skills,
		Experience:   m.Experience,
		Education:    m.Education,
		ProfileImage: m.ProfileImage,
		Resume:       m.Resume,
		CreatedAt:    m.CreatedAt,
	}
}

// Insert persists a new user. The unique index on email turns a concurrent
// duplicate registration into domain.ErrEmailTaken.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toMongoUser(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return domain.Storagef("insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Storagef("find user", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Storagef("find user by email", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, domain.Storagef("find users", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var m mongoUser
		if err := cur.Decode(&m); err != nil {
			return nil, domain.Storagef("decode user", err)
		}
		out[m.ID] = m.toDomain()
	}
	if err := cur.Err(); err != nil {
		return nil, domain.Storagef("iterate users", err)
	}
	return out, nil
}

// UpdateProfile sets only the fields present in update. Identity fields are
// not addressable here.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	setIf := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setIf("title", update.Title)
	setIf("bio", update.Bio)
	setIf("location", update.Location)
	setIf("company", update.Company)
	setIf("experience", update.Experience)
	setIf("education", update.Education)
	setIf("profile_image", update.ProfileImage)
	setIf("resume", update.Resume)
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return domain.Storagef("update profile", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return domain.Storagef("ensure user indexes", err)
	}
	return nil
}
