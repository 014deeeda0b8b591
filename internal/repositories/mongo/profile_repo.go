package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkravets/devfolio/internal/models"
	"github.com/mkravets/devfolio/internal/utils"
)

type ProfileRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	FindByHandle(ctx context.Context, handle string) (*models.Profile, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	FindAll(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	UpdateByUser(ctx context.Context, userID primitive.ObjectID, patch models.ProfilePatch) (*models.Profile, error)
	AddExperience(ctx context.Context, userID primitive.ObjectID, exp models.Experience) (*models.Profile, error)
	AddEducation(ctx context.Context, userID primitive.ObjectID, edu models.Education) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*models.Profile, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type profileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepository {
	return &profileRepo{col: db.Collection("profiles")}
}

func (r *profileRepo) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

func (r *profileRepo) FindByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"handle": handle})
}

func (r *profileRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *profileRepo) FindAll(ctx context.Context) ([]models.Profile, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []models.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	return err
}

// UpdateByUser applies the patch to the owner's profile. Only fields set in
// the patch are written; everything else is left as stored.
func (r *profileRepo) UpdateByUser(ctx context.Context, userID primitive.ObjectID, patch models.ProfilePatch) (*models.Profile, error) {
	return r.findAndUpdate(ctx, userID, bson.M{"$set": patch.SetDoc(time.Now().UTC())})
}

// AddExperience prepends: newest entries sort first.
func (r *profileRepo) AddExperience(ctx context.Context, userID primitive.ObjectID, exp models.Experience) (*models.Profile, error) {
	return r.findAndUpdate(ctx, userID, bson.M{
		"$push": bson.M{"experience": bson.M{"$each": bson.A{exp}, "$position": 0}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *profileRepo) AddEducation(ctx context.Context, userID primitive.ObjectID, edu models.Education) (*models.Profile, error) {
	return r.findAndUpdate(ctx, userID, bson.M{
		"$push": bson.M{"education": bson.M{"$each": bson.A{edu}, "$position": 0}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

// RemoveExperience pulls at most one entry by its embedded id. An unknown id
// leaves the sequence untouched and is not an error.
func (r *profileRepo) RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*models.Profile, error) {
	return r.findAndUpdate(ctx, userID, bson.M{
		"$pull": bson.M{"experience": bson.M{"_id": expID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *profileRepo) RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*models.Profile, error) {
	return r.findAndUpdate(ctx, userID, bson.M{
		"$pull": bson.M{"education": bson.M{"_id": eduID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *profileRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"user": userID})
	return err
}

func (r *profileRepo) findAndUpdate(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOneAndUpdate(ctx, bson.M{"user": userID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, utils.ErrDuplicate
	}
	return &p, err
}
