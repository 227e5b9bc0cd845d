package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class : statut "pending" à la soumission, puis "active" ou "denied" après
// décision de l'admin
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName       string             `bson:"class_name" json:"class_name" binding:"required"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructor_name,omitempty" json:"instructor_name,omitempty"`
	InstructorEmail string             `bson:"instructor_email" json:"instructor_email" binding:"required,email"`
	AvailableSeats  int                `bson:"available_seats,omitempty" json:"available_seats,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	StudentNumber   int                `bson:"student_number" json:"student_number"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
