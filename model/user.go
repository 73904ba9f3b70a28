package model

import "time"

// User is the account document stored in the users collection.
// The password field holds the argon2 digest, never plaintext, and is
// excluded from every JSON rendering.
type User struct {
	UserID    string    `bson:"user_id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"`
	Fullname  string    `bson:"fullname" json:"fullname"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
