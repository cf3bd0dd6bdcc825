package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password,omitempty"`
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the read shape of an account, without the hashed secret.
type PublicUser struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  Role               `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// NormalizeEmail is applied before every store write and lookup, which is
// what makes the email uniqueness case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks the registration fields, collecting one
// message per violated rule.
func ValidateRegistration(name, email, password string) []string {
	var msgs []string

	if strings.TrimSpace(name) == "" {
		msgs = append(msgs, "Name is required.")
	}

	email = NormalizeEmail(email)
	if email == "" {
		msgs = append(msgs, "Email is required.")
	} else if !emailPattern.MatchString(email) {
		msgs = append(msgs, "Please fill a valid email address.")
	}

	if password == "" {
		msgs = append(msgs, "Password is required.")
	} else if len(password) < 6 {
		msgs = append(msgs, "Password must be at least 6 characters long.")
	}

	return msgs
}
