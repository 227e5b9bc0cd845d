package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem référence une classe par copie de champs — aucune intégrité
// référentielle n'est vérifiée côté serveur
type CartItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassID         string             `bson:"class_id" json:"class_id" binding:"required"`
	ClassName       string             `bson:"class_name,omitempty" json:"class_name,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	InstructorEmail string             `bson:"instructor_email,omitempty" json:"instructor_email,omitempty"`
	UserEmail       string             `bson:"user_email" json:"user_email" binding:"required,email"`
}
