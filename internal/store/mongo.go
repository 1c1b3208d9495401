package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitstack/exercise-tracker/internal/models"
)

// ErrNoUser is returned when a lookup or update matches no user document.
var ErrNoUser = errors.New("user not found")

// MongoStore handles user document CRUD in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("users")}
}

// Create inserts a new user with an empty log and returns it with its
// assigned id.
func (s *MongoStore) Create(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{
		Username: username,
		Count:    0,
		Log:      []models.Exercise{},
	}
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// List returns every stored user document.
func (s *MongoStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return users, nil
}

// GetByID returns the user with the given hex id, or ErrNoUser.
func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoUser
	}
	var u models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoUser
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	return &u, nil
}

// AddExercise pushes the exercise onto the front of the user's log and bumps
// the stored count, as a single atomic update. Concurrent appends to the same
// user therefore cannot lose entries.
func (s *MongoStore) AddExercise(ctx context.Context, id string, ex models.Exercise) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoUser
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"log": bson.M{"$each": []models.Exercise{ex}, "$position": 0}},
			"$inc":  bson.M{"count": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("mongo update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoUser
	}
	return nil
}
