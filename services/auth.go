package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ArogyaMCVK/config"
	"ArogyaMCVK/models"
	"ArogyaMCVK/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

/*
* Validate the registration fields
* Reject a duplicate email, case-insensitively
* Hash the password and persist the new user
* Mint a token for the fresh account
 */
func Register(ctx context.Context, name, email, password, role string) (models.PublicUser, string, error) {
	if msgs := models.ValidateRegistration(name, email, password); len(msgs) > 0 {
		return models.PublicUser{}, "", util.ValidationError(msgs...)
	}
	email = models.NormalizeEmail(email)

	users := config.OpenCollection(config.UserCollection)

	var existing models.User
	err := config.FindOne(ctx, users, bson.M{"email": email}, &existing)
	if err == nil {
		return models.PublicUser{}, "", util.ConflictError("User already exists with this email.")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error checking for existing user:", err)
		return models.PublicUser{}, "", util.InternalError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Println("Error hashing password:", err)
		return models.PublicUser{}, "", util.InternalError()
	}

	user := models.User{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  string(hash),
		Role:      models.ParseRole(role),
		CreatedAt: time.Now(),
	}
	result, err := config.CreateOne(ctx, users, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.PublicUser{}, "", util.ConflictError("User already exists with this email.")
		}
		log.Println("Error inserting user:", err)
		return models.PublicUser{}, "", util.InternalError()
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	token, err := GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		log.Println("Error generating token:", err)
		return models.PublicUser{}, "", util.InternalError()
	}
	return user.Public(), token, nil
}

/*
* Both email and password are mandatory
* Look the user up by normalized email and compare the bcrypt hash
* The same generic message covers unknown email and wrong password
 */
func Login(ctx context.Context, email, password string) (models.PublicUser, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.PublicUser{}, "", util.BadRequestError("Please provide both email and password.")
	}

	users := config.OpenCollection(config.UserCollection)

	var user models.User
	err := config.FindOne(ctx, users, bson.M{"email": models.NormalizeEmail(email)}, &user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.PublicUser{}, "", util.CredentialsError("Invalid credentials.")
		}
		log.Println("Error fetching user for login:", err)
		return models.PublicUser{}, "", util.InternalError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.PublicUser{}, "", util.CredentialsError("Invalid credentials.")
	}

	token, err := GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		log.Println("Error generating token:", err)
		return models.PublicUser{}, "", util.InternalError()
	}
	return user.Public(), token, nil
}
