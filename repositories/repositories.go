// Package repositories holds thin collection wrappers around MongoDB.
// Every read that backs the CV pipeline (FindByIDs) trusts the caller's
// ID list; ownership checks live one layer up in the services.
package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// toObjectIDs parses hex IDs, silently skipping malformed ones. A malformed
// id in a selection list simply matches nothing, same as an unknown id.
func toObjectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	return oids
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
