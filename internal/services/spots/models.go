package spots

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// TouristSpot represents a single destination document.
// The bson/json field names match the collection that predates this service,
// including the camelCase userEmail and imgHostingInfo keys.
type TouristSpot struct {
	ID                   bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	SpotName             string          `bson:"spot_name" json:"spot_name" example:"Great Barrier Reef"`
	CountryName          string          `bson:"country_name" json:"country_name" example:"Australia"`
	Location             string          `bson:"location" json:"location" example:"Queensland"`
	Details              string          `bson:"details" json:"details"`
	AverageCost          float64         `bson:"average_cost" json:"average_cost" example:"1200"`
	TotalVisitorsPerYear int64           `bson:"total_visitors_per_year" json:"total_visitors_per_year" example:"2000000"`
	Seasonality          string          `bson:"seasonality" json:"seasonality" example:"summer"`
	TravelTime           string          `bson:"travel_time" json:"travel_time" example:"7 days"`
	UserEmail            string          `bson:"userEmail" json:"userEmail" example:"owner@example.com"`
	ImgHostingInfo       *ImgHostingInfo `bson:"imgHostingInfo,omitempty" json:"imgHostingInfo,omitempty"`
}

// ImgHostingInfo identifies the externally hosted image for a spot.
// PublicID is the key used to delete the asset from the hosting service,
// so a present ImgHostingInfo always carries a non-empty PublicID.
type ImgHostingInfo struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"public_id"`
}

// CreateSpotRequest represents a spot creation request.
// The owner email comes from the body, not from a session.
type CreateSpotRequest struct {
	SpotName             string          `json:"spot_name"`
	CountryName          string          `json:"country_name"`
	Location             string          `json:"location"`
	Details              string          `json:"details"`
	AverageCost          float64         `json:"average_cost"`
	TotalVisitorsPerYear int64           `json:"total_visitors_per_year"`
	Seasonality          string          `json:"seasonality"`
	TravelTime           string          `json:"travel_time"`
	UserEmail            string          `json:"userEmail"`
	ImgHostingInfo       *ImgHostingInfo `json:"imgHostingInfo,omitempty"`
}

// UpdateSpotRequest enumerates exactly the editable fields of a spot.
// The update is a full-field replacement: every plain field below is written
// on every update, so a field absent from the request body resets the stored
// value to its zero value. Only ImgHostingInfo is conditional - when nil the
// stored image reference is left untouched.
//
// ExPublicID optionally names the previously hosted image; when set, the
// asset is removed from the hosting service before the document write.
type UpdateSpotRequest struct {
	SpotName             string          `json:"spot_name"`
	CountryName          string          `json:"country_name"`
	Location             string          `json:"location"`
	Details              string          `json:"details"`
	AverageCost          float64         `json:"average_cost"`
	TotalVisitorsPerYear int64           `json:"total_visitors_per_year"`
	Seasonality          string          `json:"seasonality"`
	TravelTime           string          `json:"travel_time"`
	ImgHostingInfo       *ImgHostingInfo `json:"imgHostingInfo,omitempty"`
	ExPublicID           string          `json:"ex_public_id,omitempty"`
}

// CreateSpotResponse carries the id assigned by the store on creation.
type CreateSpotResponse struct {
	InsertedID string `json:"insertedId" example:"683cdb8aa96ad71e8e075bd1"`
}
