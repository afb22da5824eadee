package repositories

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/models"
)

type SkillRepository struct {
	col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{col: db.Collection("skills")}
}

func (r *SkillRepository) Insert(ctx context.Context, s *models.Skill) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, s)
	return err
}

// FindByIDs returns the skills whose ids are in the given set, in store order.
func (r *SkillRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Skill, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": toObjectIDs(ids)}})
	if err != nil {
		return nil, err
	}
	var skills []models.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// FindByIDForUser returns the skill only when it belongs to the given user.
func (r *SkillRepository) FindByIDForUser(ctx context.Context, id string, userID primitive.ObjectID) (*models.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var s models.Skill
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&s); err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *SkillRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *SkillRepository) SetHidden(ctx context.Context, id primitive.ObjectID, hidden bool) error {
	return r.Update(ctx, id, bson.M{"hidden": hidden})
}

func (r *SkillRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByUser returns one page of the user's skills plus the unpaged total.
func (r *SkillRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter bson.M, page, limit int) ([]models.Skill, int64, error) {
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
	var skills []models.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

// DistinctCategories returns the user's skill categories, ascending.
func (r *SkillRepository) DistinctCategories(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	values, err := r.col.Distinct(ctx, "category", bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}
