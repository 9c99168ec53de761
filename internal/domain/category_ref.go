package domain

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRef is the parsed form of a user-supplied category token. A token is
// either a canonical ObjectID or a human-readable category name; the id parse
// is attempted first, so a name that happens to look like valid hex of the
// right length is treated as an id.
type CategoryRef struct {
	ID   primitive.ObjectID
	Name string
	isID bool
}

// ParseCategoryRef converts a raw token into a CategoryRef. A blank token is
// rejected with InvalidInputError.
func ParseCategoryRef(token string) (CategoryRef, error) {
	if strings.TrimSpace(token) == "" {
		return CategoryRef{}, NewInvalidInputError("Category cannot be empty")
	}
	if oid, err := primitive.ObjectIDFromHex(token); err == nil {
		return CategoryRef{ID: oid, isID: true}, nil
	}
	return CategoryRef{Name: token}, nil
}

// IsID reports whether the ref carries a canonical id rather than a name.
func (r CategoryRef) IsID() bool {
	return r.isID
}

func (r CategoryRef) String() string {
	if r.isID {
		return r.ID.Hex()
	}
	return r.Name
}

// NotFound builds the resolution failure for this ref's token.
func (r CategoryRef) NotFound() error {
	return NewNotFoundError(fmt.Sprintf("Category '%s' not found", r.String()))
}
