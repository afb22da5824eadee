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

type ExperienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{col: db.Collection("experiences")}
}

func (r *ExperienceRepository) Insert(ctx context.Context, e *models.Experience) error {
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, e)
	return err
}

// FindByIDs returns the experience records whose ids are in the given set.
func (r *ExperienceRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Experience, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": toObjectIDs(ids)}})
	if err != nil {
		return nil, err
	}
	var records []models.Experience
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ExperienceRepository) FindByIDForUser(ctx context.Context, id string, userID primitive.ObjectID) (*models.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var e models.Experience
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&e); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *ExperienceRepository) SetHidden(ctx context.Context, id primitive.ObjectID, hidden bool) error {
	return r.Update(ctx, id, bson.M{"hidden": hidden})
}

func (r *ExperienceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ExperienceRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter bson.M, page, limit int) ([]models.Experience, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["user_id"] = userID

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var records []models.Experience
	if err := cur.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
