package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Email  string             `bson:"email" json:"email" binding:"required,email"`
	Photo  string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role   string             `bson:"role,omitempty" json:"role,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}

// TokenRequest est le payload signé par POST /jwt
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}
