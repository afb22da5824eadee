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

type SocialLinkRepository struct {
	col *mongo.Collection
}

func NewSocialLinkRepository(db *mongo.Database) *SocialLinkRepository {
	return &SocialLinkRepository{col: db.Collection("social_links")}
}

func (r *SocialLinkRepository) Insert(ctx context.Context, l *models.SocialLink) error {
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *SocialLinkRepository) FindByIDForUser(ctx context.Context, id string, userID primitive.ObjectID) (*models.SocialLink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var l models.SocialLink
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&l); err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (r *SocialLinkRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *SocialLinkRepository) SetHidden(ctx context.Context, id primitive.ObjectID, hidden bool) error {
	return r.Update(ctx, id, bson.M{"hidden": hidden})
}

func (r *SocialLinkRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *SocialLinkRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter bson.M, page, limit int) ([]models.SocialLink, int64, error) {
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
	var links []models.SocialLink
	if err := cur.All(ctx, &links); err != nil {
		return nil, 0, err
	}
	return links, total, nil
}
