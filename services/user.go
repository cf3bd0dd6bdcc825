package services

import (
	"context"

	"ArogyaMCVK/config"
	"ArogyaMCVK/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchUserByID resolves a token subject into the full account record,
// excluding the hashed password. The auth middleware uses this to check
// the subject still exists on every request.
func FetchUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	err = config.FindOne(ctx, config.OpenCollection(config.UserCollection), bson.M{"_id": oid}, &user, opts)
	return user, err
}
