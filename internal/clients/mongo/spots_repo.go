package mongo

import (
	"context"
	"errors"
	"fmt"

	"globetrek/internal/logger"
	"globetrek/internal/services/spots"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SpotsRepo implements the spots.Repository interface for MongoDB
type SpotsRepo struct {
	collection *mongo.Collection
}

// translateNotFound maps the driver ErrNoDocuments to the domain-level ErrSpotNotFound.
func translateNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return spots.ErrSpotNotFound
	}
	return err
}

// NewSpotsRepo creates a new spots repository
func NewSpotsRepo(parentCtx context.Context, db *mongo.Database) (*SpotsRepo, error) {
	collection := db.Collection("tourist_spots")

	// Index backing the owner-scoped query
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
		},
	}

	_, err := collection.Indexes().CreateOne(parentCtx, index)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.L().Debug("index already exists, continuing", "collection", "tourist_spots")
		} else {
			logger.L().Error("failed to create index", "collection", "tourist_spots", "error", err)
			return nil, fmt.Errorf("failed to create tourist_spots index: %w", err)
		}
	}

	return &SpotsRepo{
		collection: collection,
	}, nil
}

// Insert creates a new spot document and returns the assigned id
func (r *SpotsRepo) Insert(ctx context.Context, spot *spots.TouristSpot) (bson.ObjectID, error) {
	if spot.ID.IsZero() {
		spot.ID = bson.NewObjectID()
	}

	res, err := r.collection.InsertOne(ctx, spot)
	if err != nil {
		return bson.ObjectID{}, err
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return spot.ID, nil
	}
	return id, nil
}

// FindAll returns every spot document
func (r *SpotsRepo) FindAll(ctx context.Context) ([]*spots.TouristSpot, error) {
	return r.find(ctx, bson.M{})
}

// FindByOwner returns the spots whose userEmail equals email
func (r *SpotsRepo) FindByOwner(ctx context.Context, email string) ([]*spots.TouristSpot, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

func (r *SpotsRepo) find(ctx context.Context, filter bson.M) ([]*spots.TouristSpot, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		if cerr := cursor.Close(ctxToClose); cerr != nil {
			logger.L().Error("failed to close cursor", "error", cerr)
		}
	}(ctx)

	var list []*spots.TouristSpot
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// FindByID returns a single spot by primary identifier
func (r *SpotsRepo) FindByID(ctx context.Context, id bson.ObjectID) (*spots.TouristSpot, error) {
	var spot spots.TouristSpot
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&spot)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &spot, nil
}

// ReplaceFields overwrites the editable field set of a spot wholesale.
// Every plain field is written on every call; imgHostingInfo is written only
// when present in the request. ModifiedCount zero - whether the id is missing
// or the new values equal the old - is reported as ErrNoneModified.
func (r *SpotsRepo) ReplaceFields(ctx context.Context, id bson.ObjectID, fields spots.UpdateSpotRequest) error {
	set := bson.M{
		"spot_name":               fields.SpotName,
		"country_name":            fields.CountryName,
		"location":                fields.Location,
		"details":                 fields.Details,
		"average_cost":            fields.AverageCost,
		"total_visitors_per_year": fields.TotalVisitorsPerYear,
		"seasonality":             fields.Seasonality,
		"travel_time":             fields.TravelTime,
	}
	if fields.ImgHostingInfo != nil {
		set["imgHostingInfo"] = fields.ImgHostingInfo
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}

	if res.ModifiedCount == 0 {
		return spots.ErrNoneModified
	}

	return nil
}

// DeleteByID deletes a spot document
func (r *SpotsRepo) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return spots.ErrSpotNotFound
	}

	return nil
}
