package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinr-app/dispatch/internal/pkg/models"
	"github.com/spinr-app/dispatch/internal/utils"
	"github.com/spinr-app/dispatch/services/rides"
	"github.com/spinr-app/dispatch/services/rides/handler"
	"github.com/spinr-app/dispatch/services/rides/mocks"
	"github.com/spinr-app/dispatch/services/rides/usecase"
)

type handlerFixture struct {
	handler *handler.RideHandler
	uc      *mocks.MockRideUC
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockRideUC(ctrl)
	return &handlerFixture{
		handler: handler.NewRideHandler(uc),
		uc:      uc,
	}
}

// request builds an echo context carrying an authenticated user
func request(method, path, body string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", *userID)
	}
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateRide(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()
	vehicleTypeID := uuid.New()
	created := &models.Ride{ID: uuid.New(), RiderID: riderID, Status: models.RideStatusSearching}

	f.uc.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req rides.CreateRideRequest) (*models.Ride, error) {
			assert.Equal(t, riderID, req.RiderID)
			assert.Equal(t, vehicleTypeID, req.VehicleTypeID)
			assert.Equal(t, 49.2827, req.PickupLat)
			assert.Len(t, req.Stops, 1)
			return created, nil
		})

	body := `{
		"vehicle_type_id": "` + vehicleTypeID.String() + `",
		"pickup_address": "800 Robson St",
		"pickup_lat": 49.2827, "pickup_lng": -123.1207,
		"dropoff_address": "YVR Airport",
		"dropoff_lat": 49.1967, "dropoff_lng": -123.1815,
		"stops": [{"address": "Granville Island", "lat": 49.2712, "lng": -123.1340}]
	}`
	c, rec := request(http.MethodPost, "/api/rides", body, &riderID)

	require.NoError(t, f.handler.CreateRide(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestCreateRideRejectsBadVehicleType(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()

	body := `{"vehicle_type_id": "not-a-uuid", "pickup_lat": 49.0, "pickup_lng": -123.0}`
	c, rec := request(http.MethodPost, "/api/rides", body, &riderID)

	require.NoError(t, f.handler.CreateRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleRideRequiresScheduledTime(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()

	body := `{"vehicle_type_id": "` + uuid.New().String() + `"}`
	c, rec := request(http.MethodPost, "/api/rides/schedule", body, &riderID)

	require.NoError(t, f.handler.ScheduleRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRideInvalidID(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()

	c, rec := request(http.MethodGet, "/api/rides/abc", "", &riderID)
	c.SetParamNames("rideID")
	c.SetParamValues("abc")

	require.NoError(t, f.handler.GetRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRideNotFound(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()
	rideID := uuid.New()

	f.uc.EXPECT().GetRide(gomock.Any(), rideID).Return(nil, usecase.ErrRideNotFound)

	c, rec := request(http.MethodGet, "/api/rides/"+rideID.String(), "", &riderID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.GetRide(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchDriverNoDriversStillSearching(t *testing.T) {
	f := newHandlerFixture(t)
	rideID := uuid.New()

	f.uc.EXPECT().MatchDriver(gomock.Any(), rideID).Return(nil, usecase.ErrNoDriversAvailable)

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/match", "", nil)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.MatchDriver(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestAcceptRideResolvesDriverProfile(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	driver := &models.Driver{ID: uuid.New(), UserID: userID}
	rideID := uuid.New()
	accepted := &models.Ride{ID: rideID, Status: models.RideStatusDriverAccepted}

	f.uc.EXPECT().DriverForUser(gomock.Any(), userID).Return(driver, nil)
	f.uc.EXPECT().AcceptRide(gomock.Any(), rideID, driver.ID).Return(accepted, nil)

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/accept", "", &userID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.AcceptRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAcceptRideWithoutAuth(t *testing.T) {
	f := newHandlerFixture(t)
	rideID := uuid.New()

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/accept", "", nil)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.AcceptRide(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPickupOTPMismatchConflicts(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	driver := &models.Driver{ID: uuid.New(), UserID: userID}
	rideID := uuid.New()

	f.uc.EXPECT().DriverForUser(gomock.Any(), userID).Return(driver, nil)
	f.uc.EXPECT().VerifyPickupOTP(gomock.Any(), rideID, driver.ID, "0000").Return(nil, usecase.ErrOTPMismatch)

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/verify-otp", `{"otp": "0000"}`, &userID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.VerifyPickupOTP(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelRideByRiderForwardsReason(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()
	rideID := uuid.New()
	cancelled := &models.Ride{ID: rideID, Status: models.RideStatusCancelled}

	f.uc.EXPECT().
		CancelRideByRider(gomock.Any(), rideID, riderID, "driver too far").
		Return(cancelled, nil)

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/cancel", `{"reason": "driver too far"}`, &riderID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.CancelRideByRider(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddTipBeforeCompletionConflicts(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()
	rideID := uuid.New()

	f.uc.EXPECT().AddTip(gomock.Any(), rideID, riderID, 5.0).Return(nil, usecase.ErrTipNotAllowed)

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/tip", `{"amount": 5.0}`, &riderID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.AddTip(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRateDriverForbiddenForOutsider(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()
	rideID := uuid.New()

	f.uc.EXPECT().RateDriver(gomock.Any(), rideID, riderID, 5).Return(usecase.ErrNotRideRider)

	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/rate", `{"rating": 5}`, &riderID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.RateDriver(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSharedTripIsPublic(t *testing.T) {
	f := newHandlerFixture(t)
	view := &rides.SharedTripView{
		RideID:         uuid.New(),
		Status:         models.RideStatusInProgress,
		PickupAddress:  "800 Robson St",
		DropoffAddress: "YVR Airport",
	}

	f.uc.EXPECT().SharedTrip(gomock.Any(), "tok_abc123").Return(view, nil)

	c, rec := request(http.MethodGet, "/api/shared/tok_abc123", "", nil)
	c.SetParamNames("token")
	c.SetParamValues("tok_abc123")

	require.NoError(t, f.handler.SharedTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "otp")
}

func TestShareTripReturnsToken(t *testing.T) {
	f := newHandlerFixture(t)
	riderID := uuid.New()
	rideID := uuid.New()

	f.uc.EXPECT().
		ShareTrip(gomock.Any(), rideID, riderID, gomock.Len(1)).
		Return("tok_abc123", nil)

	body := `{"contacts": [{"name": "Sam", "phone": "+16045551234"}]}`
	c, rec := request(http.MethodPost, "/api/rides/"+rideID.String()+"/share", body, &riderID)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	require.NoError(t, f.handler.ShareTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
