package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/models"
)

type LanguageRepository struct {
	col *mongo.Collection
}

func NewLanguageRepository(db *mongo.Database) *LanguageRepository {
	return &LanguageRepository{col: db.Collection("languages")}
}

func (r *LanguageRepository) Insert(ctx context.Context, l *models.Language) error {
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, l)
	return err
}

// FindByIDs returns the languages whose ids are in the given set, in store order.
func (r *LanguageRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Language, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": toObjectIDs(ids)}})
	if err != nil {
		return nil, err
	}
	var languages []models.Language
	if err := cur.All(ctx, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *LanguageRepository) FindByIDForUser(ctx context.Context, id string, userID primitive.ObjectID) (*models.Language, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var l models.Language
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&l); err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (r *LanguageRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *LanguageRepository) SetHidden(ctx context.Context, id primitive.ObjectID, hidden bool) error {
	return r.Update(ctx, id, bson.M{"hidden": hidden})
}

func (r *LanguageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *LanguageRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter bson.M, page, limit int) ([]models.Language, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["user_id"] = userID

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var languages []models.Language
	if err := cur.All(ctx, &languages); err != nil {
		return nil, 0, err
	}
	return languages, total, nil
}
