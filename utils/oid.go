package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidIdentifier is returned for ids that cannot address any document.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Oid parses a 24-character hex ObjectID.
func Oid(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q is not a valid ObjectId", ErrInvalidIdentifier, hex)
	}
	return id, nil
}

// UserID parses the integer key of the usuario collection.
func UserID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid user id", ErrInvalidIdentifier, raw)
	}
	return id, nil
}

// FacilityID validates the string key of the instalacion collection.
func FacilityID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%w: empty facility id", ErrInvalidIdentifier)
	}
	return id, nil
}
