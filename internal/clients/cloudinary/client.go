package cloudinary

import (
	"context"
	"fmt"
	"log/slog"

	"globetrek/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client wraps the Cloudinary SDK behind the spots.AssetStore interface.
type Client struct {
	cld *cloudinary.Cloudinary
	log *slog.Logger
}

// New creates a configured Cloudinary client
func New(cfg config.Config, log *slog.Logger) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &Client{
		cld: cld,
		log: log,
	}, nil
}

// Destroy removes a hosted asset by its public id. Destroying an already
// deleted asset is not an error; any other non-ok outcome is.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}

	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %q: %s", publicID, res.Result)
	}

	c.log.Debug("destroyed hosted asset", "public_id", publicID)
	return nil
}
