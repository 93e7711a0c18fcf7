package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identifiers follow the 24-hex ObjectID convention so ids minted by the
// previous deployment keep working at every find/delete boundary.

func NewID() string { return primitive.NewObjectID().Hex() }

// ParseID normalizes an external id, rejecting anything that is not a
// well-formed 24-hex ObjectID.
func ParseID(s string) (string, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.Hex(), nil
}
