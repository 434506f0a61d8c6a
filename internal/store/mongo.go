package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/revisaai/revisaai/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by NewMongoSet.
const (
	MotosCollection         = "motos"
	RevisionsCollection     = "revisions"
	NotificationsCollection = "notifications"
	UsersCollection         = "users"
	WorkshopsCollection     = "workshops"
)

// NewMongoSet builds MongoDB-backed stores on db, creating the indexes the
// queries rely on and seeding the workshop directory when it is empty.
func NewMongoSet(ctx context.Context, db *mongo.Database, opts ...Option) (*Set, error) {
	o := buildOptions(opts)
	idx := map[string][]mongo.IndexModel{
		MotosCollection: {{Keys: bson.D{{Key: "ownerId", Value: 1}}}},
		RevisionsCollection: {
			{Keys: bson.D{{Key: "motoId", Value: 1}}},
			{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		},
		NotificationsCollection: {
			{Keys: bson.D{{Key: "revisionId", Value: 1}}},
			{Keys: bson.D{{Key: "motoId", Value: 1}}},
			{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		},
		UsersCollection: {{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
	}
	for name, ims := range idx {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, ims); err != nil {
			return nil, fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}

	workshops := &MongoWorkshopStore{col: db.Collection(WorkshopsCollection)}
	if err := workshops.seed(ctx, SeedWorkshops()); err != nil {
		return nil, fmt.Errorf("seed workshops: %w", err)
	}

	return &Set{
		Motos:         &MongoMotoStore{col: db.Collection(MotosCollection), now: o.now},
		Revisions:     &MongoRevisionStore{col: db.Collection(RevisionsCollection), now: o.now},
		Notifications: &MongoNotificationStore{col: db.Collection(NotificationsCollection), now: o.now},
		Users:         &MongoUserStore{col: db.Collection(UsersCollection), cost: o.passwordCost, now: o.now},
		Workshops:     workshops,
	}, nil
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func findAll[T any](ctx context.Context, col *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// setFields applies $set with the given fields and returns the updated document.
// With no fields it returns the current document.
func setFields[T any](ctx context.Context, col *mongo.Collection, resource, id string, set bson.M) (T, error) {
	if len(set) == 0 {
		return findOne[T](ctx, col, resource, id)
	}
	var out T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, &models.NotFoundError{Resource: resource, ID: id}
	}
	return out, err
}

func findOne[T any](ctx context.Context, col *mongo.Collection, resource, id string) (T, error) {
	var out T
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, &models.NotFoundError{Resource: resource, ID: id}
	}
	return out, err
}

func putIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

// MongoMotoStore implements MotoStore on a MongoDB collection.
type MongoMotoStore struct {
	col *mongo.Collection
	now func() time.Time
}

func (s *MongoMotoStore) List(ctx context.Context) ([]models.Moto, error) {
	return findAll[models.Moto](ctx, s.col, bson.M{}, newestFirst)
}

func (s *MongoMotoStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Moto, error) {
	return findAll[models.Moto](ctx, s.col, bson.M{"ownerId": ownerID}, newestFirst)
}

func (s *MongoMotoStore) Get(ctx context.Context, id string) (models.Moto, error) {
	return findOne[models.Moto](ctx, s.col, "moto", id)
}

func (s *MongoMotoStore) Create(ctx context.Context, in models.CreateMotoInput) (models.Moto, error) {
	m := models.NewMoto(in, s.now())
	m.ID = uuid.NewString()
	if _, err := s.col.InsertOne(ctx, m); err != nil {
		return models.Moto{}, err
	}
	return m, nil
}

func (s *MongoMotoStore) Update(ctx context.Context, id string, in models.UpdateMotoInput) (models.Moto, error) {
	set := bson.M{}
	putIf(set, "name", in.Name)
	putIf(set, "brand", in.Brand)
	putIf(set, "model", in.Model)
	putIf(set, "year", in.Year)
	putIf(set, "plate", in.Plate)
	putIf(set, "km", in.Km)
	putIf(set, "color", in.Color)
	putIf(set, "nextRevisionDate", in.NextRevisionDate)
	return setFields[models.Moto](ctx, s.col, "moto", id, set)
}

func (s *MongoMotoStore) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// MongoRevisionStore implements RevisionStore on a MongoDB collection.
type MongoRevisionStore struct {
	col *mongo.Collection
	now func() time.Time
}

func (s *MongoRevisionStore) List(ctx context.Context) ([]models.Revision, error) {
	return findAll[models.Revision](ctx, s.col, bson.M{}, newestFirst)
}

func (s *MongoRevisionStore) ListByMoto(ctx context.Context, motoID string) ([]models.Revision, error) {
	return findAll[models.Revision](ctx, s.col, bson.M{"motoId": motoID}, newestFirst)
}

func (s *MongoRevisionStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Revision, error) {
	return findAll[models.Revision](ctx, s.col, bson.M{"ownerId": ownerID}, newestFirst)
}

func (s *MongoRevisionStore) Get(ctx context.Context, id string) (models.Revision, error) {
	return findOne[models.Revision](ctx, s.col, "revision", id)
}

func (s *MongoRevisionStore) Create(ctx context.Context, in models.CreateRevisionInput) (models.Revision, error) {
	r := models.NewRevision(in, s.now())
	r.ID = uuid.NewString()
	if _, err := s.col.InsertOne(ctx, r); err != nil {
		return models.Revision{}, err
	}
	return r, nil
}

func (s *MongoRevisionStore) Update(ctx context.Context, id string, in models.UpdateRevisionInput) (models.Revision, error) {
	set := bson.M{}
	putIf(set, "motoId", in.MotoID)
	putIf(set, "title", in.Title)
	putIf(set, "service", in.Service)
	putIf(set, "details", in.Details)
	putIf(set, "date", in.Date)
	putIf(set, "time", in.Time)
	putIf(set, "km", in.Km)
	putIf(set, "status", in.Status)
	putIf(set, "autoReminderEnabled", in.AutoReminderEnabled)
	putIf(set, "autoReminderInterval", in.AutoReminderInterval)
	return setFields[models.Revision](ctx, s.col, "revision", id, set)
}

func (s *MongoRevisionStore) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoRevisionStore) DeleteByMoto(ctx context.Context, motoID string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"motoId": motoID})
	return err
}

// MongoNotificationStore implements NotificationStore on a MongoDB collection.
type MongoNotificationStore struct {
	col *mongo.Collection
	now func() time.Time
}

func (s *MongoNotificationStore) List(ctx context.Context) ([]models.Notification, error) {
	return findAll[models.Notification](ctx, s.col, bson.M{}, newestFirst)
}

func (s *MongoNotificationStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Notification, error) {
	return findAll[models.Notification](ctx, s.col, bson.M{"ownerId": ownerID}, newestFirst)
}

func (s *MongoNotificationStore) Get(ctx context.Context, id string) (models.Notification, error) {
	return findOne[models.Notification](ctx, s.col, "notification", id)
}

func (s *MongoNotificationStore) Create(ctx context.Context, in models.CreateNotificationInput) (models.Notification, error) {
	n := models.NewNotification(in, s.now())
	n.ID = uuid.NewString()
	if _, err := s.col.InsertOne(ctx, n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (s *MongoNotificationStore) UpdateStatus(ctx context.Context, id string, status models.Status) (models.Notification, error) {
	return setFields[models.Notification](ctx, s.col, "notification", id, bson.M{"status": status})
}

func (s *MongoNotificationStore) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoNotificationStore) DeleteByRevision(ctx context.Context, revisionID string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"revisionId": revisionID})
	return err
}

func (s *MongoNotificationStore) DeleteByMoto(ctx context.Context, motoID string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"motoId": motoID})
	return err
}

func (s *MongoNotificationStore) UpdateStatusByRevision(ctx context.Context, revisionID string, status models.Status) ([]models.Notification, error) {
	filter := bson.M{"revisionId": revisionID}
	if _, err := s.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": status}}); err != nil {
		return nil, err
	}
	return findAll[models.Notification](ctx, s.col, filter, newestFirst)
}

// MongoWorkshopStore implements WorkshopStore on a MongoDB collection.
type MongoWorkshopStore struct {
	col *mongo.Collection
}

func (s *MongoWorkshopStore) seed(ctx context.Context, seed []models.Workshop) error {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil || n > 0 {
		return err
	}
	docs := make([]interface{}, 0, len(seed))
	for _, w := range seed {
		docs = append(docs, w)
	}
	_, err = s.col.InsertMany(ctx, docs)
	return err
}

func (s *MongoWorkshopStore) Search(ctx context.Context, query string) ([]models.Workshop, error) {
	byName := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	q := strings.TrimSpace(query)
	if q == "" {
		return findAll[models.Workshop](ctx, s.col, bson.M{}, byName)
	}
	re := primitiveRegex(q)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"address": re},
		bson.M{"neighborhood": re},
		bson.M{"services": re},
	}}
	return findAll[models.Workshop](ctx, s.col, filter, byName)
}

func primitiveRegex(q string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
}
