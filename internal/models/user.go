package models

import (
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persisted account record. PasswordHash is write-only from the
// API's perspective and must never appear in a response body.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Birthdate    *time.Time         `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// PublicUser is the profile shape returned to clients. Avatar is derived
// from the name at response time and never stored.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
	CreatedAt string `json:"created_at"`
	Avatar    string `json:"avatar"`
}

// Public converts the stored record into its client-facing shape.
func (u User) Public() PublicUser {
	pub := PublicUser{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		Avatar:    AvatarURL(u.Name),
	}
	if u.Birthdate != nil {
		pub.Birthdate = u.Birthdate.UTC().Format("2006-01-02")
	}
	return pub
}

// AvatarURL derives a deterministic avatar image URL from a display name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}
