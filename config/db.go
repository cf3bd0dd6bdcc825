package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UserCollection    = "users"
	PatientCollection = "patients"
)

var client *mongo.Client

func ConnectDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoURI()))
	if err != nil {
		return err
	}
	if err := c.Ping(ctx, nil); err != nil {
		return err
	}
	client = c
	log.Println("MongoDB connected")
	return nil
}

func DisconnectDB(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	}
}

func OpenCollection(name string) *mongo.Collection {
	return client.Database(DBName()).Collection(name)
}

// EnsureIndexes creates the two uniqueness constraints the service relies
// on: user email and patient aadharNo.
func EnsureIndexes(ctx context.Context) error {
	_, err := OpenCollection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = OpenCollection(PatientCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "aadharNo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}, opts ...*options.FindOneOptions) error {
	return coll.FindOne(ctx, filter, opts...).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, results interface{}, opts ...*options.FindOptions) error {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, document)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}
