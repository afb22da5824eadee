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

type EducationRepository struct {
	col *mongo.Collection
}

func NewEducationRepository(db *mongo.Database) *EducationRepository {
	return &EducationRepository{col: db.Collection("education")}
}

func (r *EducationRepository) Insert(ctx context.Context, e *models.Education) error {
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, e)
	return err
}

// FindByIDs returns the education records whose ids are in the given set.
func (r *EducationRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Education, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": toObjectIDs(ids)}})
	if err != nil {
		return nil, err
	}
	var records []models.Education
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *EducationRepository) FindByIDForUser(ctx context.Context, id string, userID primitive.ObjectID) (*models.Education, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var e models.Education
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&e); err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *EducationRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *EducationRepository) SetHidden(ctx context.Context, id primitive.ObjectID, hidden bool) error {
	return r.Update(ctx, id, bson.M{"hidden": hidden})
}

func (r *EducationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *EducationRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter bson.M, page, limit int) ([]models.Education, int64, error) {
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
	var records []models.Education
	if err := cur.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
