package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single log entry embedded in its parent User document.
// The subdocument id is internal and never serialized in responses.
type Exercise struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Description string             `json:"description" bson:"description"`
	Duration    int                `json:"duration"    bson:"duration"`
	Date        string             `json:"date"        bson:"date"`
}

// User is a document in the "users" collection. The log is ordered
// most-recently-added first. Count is stored for convenience but readers
// recompute it from the log they actually return.
type User struct {
	ID       primitive.ObjectID `json:"_id"      bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Count    int                `json:"count"    bson:"count"`
	Log      []Exercise         `json:"log"      bson:"log"`
}

// CreatedUserResponse is the response for POST /api/users.
type CreatedUserResponse struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
}

// ExerciseResponse is the response for POST /api/users/{id}/exercises:
// the parent's identity merged with the new exercise's fields.
type ExerciseResponse struct {
	ID          primitive.ObjectID `json:"_id"`
	Username    string             `json:"username"`
	Description string             `json:"description"`
	Duration    int                `json:"duration"`
	Date        string             `json:"date"`
}

// LogEntry is an exercise as it appears in GET /api/users/{id}/logs.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// UserLogResponse is the response for GET /api/users/{id}/logs.
type UserLogResponse struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntry         `json:"log"`
}
