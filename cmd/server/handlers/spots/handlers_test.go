package spots

import (
	"context"
	"net/http"
	"testing"

	"globetrek/cmd/server/testutil"
	"globetrek/internal/services/spots"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	spotsEndpoint = "/tourist-spot"
	ownerEmail    = "a@x.com"
)

// MockSpotsService mocks the spots service
type MockSpotsService struct {
	mock.Mock
}

func (m *MockSpotsService) Create(ctx context.Context, req spots.CreateSpotRequest) (bson.ObjectID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockSpotsService) ListAll(ctx context.Context) ([]*spots.TouristSpot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spots.TouristSpot), args.Error(1)
}

func (m *MockSpotsService) ListByOwner(ctx context.Context, email, verifiedEmail string) ([]*spots.TouristSpot, error) {
	args := m.Called(ctx, email, verifiedEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spots.TouristSpot), args.Error(1)
}

func (m *MockSpotsService) GetByID(ctx context.Context, id bson.ObjectID) (*spots.TouristSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spots.TouristSpot), args.Error(1)
}

func (m *MockSpotsService) Update(ctx context.Context, id bson.ObjectID, req spots.UpdateSpotRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockSpotsService) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeSessionGuard injects a verified email the way the session middleware
// does, without needing a real token.
func fakeSessionGuard(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userEmail", email)
		return c.Next()
	}
}

func setupSpotsTest(t *testing.T, verifiedEmail string) (*fiber.App, *MockSpotsService) {
	t.Helper()

	svc := &MockSpotsService{}
	app := testutil.CreateTestApp(t)
	h := NewHandlers(svc)

	grp := app.Group(spotsEndpoint)
	grp.Get("/", h.List)
	grp.Get("/user/:email", fakeSessionGuard(verifiedEmail), h.ListByOwner)
	grp.Get("/:id", h.Get)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	return app, svc
}

func TestListEmptyCollectionIs404(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	svc.On("ListAll", mock.Anything).Return(nil, spots.ErrSpotNotFound)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestListReturnsSpots(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	svc.On("ListAll", mock.Anything).Return([]*spots.TouristSpot{
		{SpotName: "Reef", UserEmail: ownerEmail},
	}, nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestListByOwnerMismatchIs403(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	svc.On("ListByOwner", mock.Anything, "b@x.com", ownerEmail).Return(nil, spots.ErrOwnerMismatch)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint+"/user/b@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListByOwnerEmptyIs404(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	svc.On("ListByOwner", mock.Anything, ownerEmail, ownerEmail).Return(nil, spots.ErrSpotNotFound)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint+"/user/"+ownerEmail, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetMalformedIDIs400(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint+"/not-a-hex-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetMissingIs404(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("GetByID", mock.Anything, id).Return(nil, spots.ErrSpotNotFound)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint+"/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetReturnsSpot(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("GetByID", mock.Anything, id).Return(&spots.TouristSpot{ID: id, SpotName: "Reef"}, nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, spotsEndpoint+"/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Reef", data["spot_name"])
}

func TestCreateReturns201WithID(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req spots.CreateSpotRequest) bool {
		return req.SpotName == "Reef" && req.UserEmail == ownerEmail
	})).Return(id, nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, spotsEndpoint, map[string]any{
		"spot_name": "Reef",
		"userEmail": ownerEmail,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id.Hex(), data["insertedId"])
}

func TestCreateWriteFailureIs500(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	svc.On("Create", mock.Anything, mock.AnythingOfType("spots.CreateSpotRequest")).
		Return(bson.ObjectID{}, spots.ErrCreateSpot)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, spotsEndpoint, map[string]any{
		"spot_name": "Reef",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestUpdateZeroModifiedIs500(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("Update", mock.Anything, id, mock.AnythingOfType("spots.UpdateSpotRequest")).
		Return(spots.ErrNoneModified)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPatch, spotsEndpoint+"/"+id.Hex(), map[string]any{
		"spot_name": "Reef",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestUpdatePassesExPublicIDThrough(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req spots.UpdateSpotRequest) bool {
		return req.ExPublicID == "img123" && req.SpotName == "Reef"
	})).Return(nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPatch, spotsEndpoint+"/"+id.Hex(), map[string]any{
		"spot_name":    "Reef",
		"ex_public_id": "img123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestDeleteMissingIs404(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("Delete", mock.Anything, id).Return(spots.ErrSpotNotFound)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodDelete, spotsEndpoint+"/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteReturns200(t *testing.T) {
	app, svc := setupSpotsTest(t, ownerEmail)
	id := bson.NewObjectID()
	svc.On("Delete", mock.Anything, id).Return(nil)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodDelete, spotsEndpoint+"/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutil.DecodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])
}
