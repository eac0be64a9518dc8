package spots

import (
	"context"
	"errors"
	"log/slog"

	"globetrek/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles tourist-spot business logic
type Service struct {
	repo   Repository
	assets AssetStore
	log    *slog.Logger
}

// NewService creates a new spots service
func NewService(repo Repository, assets AssetStore, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assets,
		log:    log,
	}
}

// Create inserts a new spot. The owner email is taken from the request body
// as supplied; ownership is not derived from the session.
func (s *Service) Create(ctx context.Context, req CreateSpotRequest) (bson.ObjectID, error) {
	spot := &TouristSpot{
		SpotName:             sanitize.Clean(req.SpotName),
		CountryName:          sanitize.Clean(req.CountryName),
		Location:             sanitize.Clean(req.Location),
		Details:              sanitize.Clean(req.Details),
		AverageCost:          req.AverageCost,
		TotalVisitorsPerYear: req.TotalVisitorsPerYear,
		Seasonality:          sanitize.Clean(req.Seasonality),
		TravelTime:           sanitize.Clean(req.TravelTime),
		UserEmail:            req.UserEmail,
		ImgHostingInfo:       req.ImgHostingInfo,
	}

	id, err := s.repo.Insert(ctx, spot)
	if err != nil {
		s.log.Error(ErrCreateSpot.Error(), "error", err, "user_email", req.UserEmail)
		return bson.ObjectID{}, ErrCreateSpot
	}

	return id, nil
}

// ListAll returns every spot in the collection. An empty collection is
// reported as ErrSpotNotFound so the transport answers 404, not an empty 200.
func (s *Service) ListAll(ctx context.Context) ([]*TouristSpot, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error(ErrListSpots.Error(), "error", err)
		return nil, ErrListSpots
	}
	if len(list) == 0 {
		return nil, ErrSpotNotFound
	}
	return list, nil
}

// ListByOwner returns the spots owned by email. The requested email must
// equal the verified session email; on mismatch no query is executed.
func (s *Service) ListByOwner(ctx context.Context, email, verifiedEmail string) ([]*TouristSpot, error) {
	if email != verifiedEmail {
		s.log.Info("owner-scoped query rejected", "requested", email, "verified", verifiedEmail)
		return nil, ErrOwnerMismatch
	}

	list, err := s.repo.FindByOwner(ctx, email)
	if err != nil {
		s.log.Error(ErrListSpots.Error(), "error", err, "user_email", email)
		return nil, ErrListSpots
	}
	if len(list) == 0 {
		return nil, ErrSpotNotFound
	}
	return list, nil
}

// GetByID returns a single spot by its identifier.
func (s *Service) GetByID(ctx context.Context, id bson.ObjectID) (*TouristSpot, error) {
	spot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			return nil, ErrSpotNotFound
		}
		s.log.Error(ErrListSpots.Error(), "error", err, "spot_id", id.Hex())
		return nil, ErrListSpots
	}
	return spot, nil
}

// Update replaces the editable fields of a spot wholesale. When the request
// names a previously hosted image (ex_public_id), that asset is removed from
// the hosting service before the document write; cleanup failure is logged
// and does not abort the update.
func (s *Service) Update(ctx context.Context, id bson.ObjectID, req UpdateSpotRequest) error {
	if req.ExPublicID != "" {
		if err := s.assets.Destroy(ctx, req.ExPublicID); err != nil {
			s.log.Warn("replaced image cleanup failed", "public_id", req.ExPublicID, "spot_id", id.Hex(), "error", err)
		}
	}

	patch := sanitizedUpdate(req)

	if err := s.repo.ReplaceFields(ctx, id, patch); err != nil {
		if errors.Is(err, ErrNoneModified) {
			s.log.Info("update modified nothing", "spot_id", id.Hex())
			return ErrNoneModified
		}
		s.log.Error(ErrUpdateSpot.Error(), "error", err, "spot_id", id.Hex())
		return ErrUpdateSpot
	}

	return nil
}

// Delete removes a spot. If the document references a hosted image, the
// asset is destroyed first, best-effort; then the document is deleted.
// A partially cleaned state is possible when either step fails and there is
// no compensation or retry.
func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	spot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			s.log.Info("spot not found for delete", "spot_id", id.Hex())
			return ErrSpotNotFound
		}
		s.log.Error(ErrDeleteSpot.Error(), "error", err, "spot_id", id.Hex())
		return ErrDeleteSpot
	}

	if spot.ImgHostingInfo != nil && spot.ImgHostingInfo.PublicID != "" {
		if err := s.assets.Destroy(ctx, spot.ImgHostingInfo.PublicID); err != nil {
			s.log.Warn("image cleanup failed", "public_id", spot.ImgHostingInfo.PublicID, "spot_id", id.Hex(), "error", err)
		}
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			return ErrSpotNotFound
		}
		s.log.Error(ErrDeleteSpot.Error(), "error", err, "spot_id", id.Hex())
		return ErrDeleteSpot
	}

	return nil
}

// sanitizedUpdate strips HTML from the descriptive text fields of an update
func sanitizedUpdate(req UpdateSpotRequest) UpdateSpotRequest {
	req.SpotName = sanitize.Clean(req.SpotName)
	req.CountryName = sanitize.Clean(req.CountryName)
	req.Location = sanitize.Clean(req.Location)
	req.Details = sanitize.Clean(req.Details)
	req.Seasonality = sanitize.Clean(req.Seasonality)
	req.TravelTime = sanitize.Clean(req.TravelTime)
	return req
}
