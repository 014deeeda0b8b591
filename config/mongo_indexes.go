package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the uniqueness ground truth the application
// relies on: one credential per email, one profile per user, and globally
// unique handles (sparse, since handles are optional).
func EnsureMongoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("uniq_email").
			SetUnique(true),
	})
	if err != nil {
		return err
	}

	profiles := db.Collection("profiles")
	_, err = profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user", Value: 1}},
			Options: options.Index().
				SetName("uniq_user").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "handle", Value: 1}},
			Options: options.Index().
				SetName("uniq_handle").
				SetUnique(true).
				SetSparse(true),
		},
	})
	return err
}
