package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/revisaai/revisaai/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserStore implements UserStore on a MongoDB collection with a unique
// index on email.
type MongoUserStore struct {
	col  *mongo.Collection
	cost int
	now  func() time.Time
}

func (s *MongoUserStore) List(ctx context.Context) ([]models.User, error) {
	users, err := findAll[models.User](ctx, s.col, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

func (s *MongoUserStore) Get(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, &models.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return models.User{}, err
	}
	return u.Public(), nil
}

func (s *MongoUserStore) Register(ctx context.Context, in models.RegisterInput) (models.User, error) {
	in.Normalize()
	hash, err := hashPassword(in.Password, s.cost)
	if err != nil {
		return models.User{}, err
	}
	now := s.now()
	u := models.User{ID: uuid.NewString(), Name: in.Name, Email: in.Email, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, &models.AlreadyExistsError{Resource: "user", Field: "email", Value: in.Email}
		}
		return models.User{}, err
	}
	return u.Public(), nil
}

func (s *MongoUserStore) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": models.NormalizeEmail(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !checkPassword(u.PasswordHash, password) {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u.Public(), nil
}

func (s *MongoUserStore) Update(ctx context.Context, id string, in models.UpdateProfileInput) (models.User, error) {
	set := bson.M{"updatedAt": s.now()}
	putIf(set, "name", in.Name)
	putIf(set, "avatarUrl", in.AvatarURL)
	var email string
	if in.Email != nil {
		email = models.NormalizeEmail(*in.Email)
		set["email"] = email
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password, s.cost)
		if err != nil {
			return models.User{}, err
		}
		set["passwordHash"] = hash
	}
	u, err := setFields[models.User](ctx, s.col, "user", id, set)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, &models.AlreadyExistsError{Resource: "user", Field: "email", Value: email}
	}
	if err != nil {
		return models.User{}, err
	}
	return u.Public(), nil
}

func (s *MongoUserStore) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
