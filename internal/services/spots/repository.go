package spots

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for spot persistence operations
type Repository interface {
	Insert(ctx context.Context, spot *TouristSpot) (bson.ObjectID, error)
	FindAll(ctx context.Context) ([]*TouristSpot, error)
	FindByOwner(ctx context.Context, email string) ([]*TouristSpot, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*TouristSpot, error)
	// ReplaceFields performs the full-field $set described on
	// UpdateSpotRequest and returns ErrNoneModified when zero documents
	// were modified.
	ReplaceFields(ctx context.Context, id bson.ObjectID, fields UpdateSpotRequest) error
	// DeleteByID returns ErrSpotNotFound when zero documents were deleted.
	DeleteByID(ctx context.Context, id bson.ObjectID) error
}

// AssetStore deletes hosted image assets by their external identifier.
type AssetStore interface {
	Destroy(ctx context.Context, publicID string) error
}
