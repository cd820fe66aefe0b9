package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetyard/dispatch/internal/pkg/models"
	"github.com/fleetyard/dispatch/services/dispatch/mocks"
)

func newTestHandler(t *testing.T) (*DispatchHandler, *mocks.MockDispatchUC) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockDispatchUC(ctrl)
	return NewDispatchHandler(uc), uc
}

func newEchoContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testDispatch(status models.DispatchStatus) *models.Dispatch {
	driverID := int64(42)
	return &models.Dispatch{
		DispatchID: uuid.New(),
		BookingID:  7,
		DriverID:   &driverID,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestCreateDispatchHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	created := testDispatch(models.DispatchStatusPending)

	uc.EXPECT().
		CreateDispatch(gomock.Any(), models.CreateDispatchRequest{BookingID: 7}).
		Return(created, nil)

	c, rec := newEchoContext(http.MethodPost, "/internal/dispatches", `{"booking_id":7}`)
	require.NoError(t, h.CreateDispatch(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.DispatchID.String())
}

func TestCreateDispatchHandlerBookingNotFound(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		CreateDispatch(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrBookingNotFound)

	c, rec := newEchoContext(http.MethodPost, "/internal/dispatches", `{"booking_id":999}`)
	require.NoError(t, h.CreateDispatch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDispatchHandlerValidation(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		CreateDispatch(gomock.Any(), gomock.Any()).
		Return(nil, models.ValidationError{Field: "booking_id", Msg: "must be a positive integer"})

	c, rec := newEchoContext(http.MethodPost, "/internal/dispatches", `{"booking_id":-1}`)
	require.NoError(t, h.CreateDispatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDispatchHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	d := testDispatch(models.DispatchStatusInTransit)
	id := d.DispatchID.String()

	uc.EXPECT().GetDispatch(gomock.Any(), id).Return(d, nil)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches/"+id, "")
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.GetDispatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"in_transit"`)
}

func TestGetDispatchHandlerBadID(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches/not-a-uuid", "")
	c.SetParamNames("dispatchID")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetDispatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDispatchHandlerNotFound(t *testing.T) {
	h, uc := newTestHandler(t)
	id := uuid.NewString()

	uc.EXPECT().GetDispatch(gomock.Any(), id).Return(nil, models.ErrDispatchNotFound)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches/"+id, "")
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.GetDispatch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllowedTransitionsHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	id := uuid.NewString()

	uc.EXPECT().
		AllowedTransitions(gomock.Any(), id).
		Return([]models.DispatchStatus{models.DispatchStatusInTransit, models.DispatchStatusCancelled}, nil)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches/"+id+"/transitions", "")
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.GetAllowedTransitions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Allowed []string `json:"allowed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"in_transit", "cancelled"}, resp.Data.Allowed)
}

func TestUpdateDispatchStatusHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	updated := testDispatch(models.DispatchStatusDispatched)
	id := updated.DispatchID.String()

	uc.EXPECT().
		UpdateDispatchStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.UpdateDispatchStatusRequest) (*models.Dispatch, error) {
			assert.Equal(t, id, req.DispatchID)
			assert.Equal(t, "dispatched", req.Status)
			return updated, nil
		})

	c, rec := newEchoContext(http.MethodPatch, "/internal/dispatches/"+id+"/status", `{"status":"dispatched"}`)
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.UpdateDispatchStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateDispatchStatusHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid transition", models.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"terminal", models.ErrDispatchTerminal, http.StatusConflict},
		{"stale", models.ErrStaleDispatch, http.StatusConflict},
		{"not found", models.ErrDispatchNotFound, http.StatusNotFound},
		{"bad token", models.ValidationError{Field: "status", Msg: "unknown status"}, http.StatusBadRequest},
		{"upstream", models.ErrUpstreamFailure, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, uc := newTestHandler(t)
			id := uuid.NewString()

			uc.EXPECT().UpdateDispatchStatus(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newEchoContext(http.MethodPatch, "/internal/dispatches/"+id+"/status", `{"status":"dispatched"}`)
			c.SetParamNames("dispatchID")
			c.SetParamValues(id)

			require.NoError(t, h.UpdateDispatchStatus(c))
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestCancelDispatchHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	cancelled := testDispatch(models.DispatchStatusCancelled)
	id := cancelled.DispatchID.String()

	uc.EXPECT().CancelDispatch(gomock.Any(), id).Return(cancelled, nil)

	c, rec := newEchoContext(http.MethodPost, "/internal/dispatches/"+id+"/cancel", "")
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.CancelDispatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestListDispatchesHandler(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		ListDispatchesByStatus(gomock.Any(), models.DispatchStatusPending, 10, 5).
		Return([]*models.Dispatch{testDispatch(models.DispatchStatusPending)}, nil)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches?status=pending&offset=10&limit=5", "")
	require.NoError(t, h.ListDispatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListDispatchesHandlerBadStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches?status=shipped", "")
	require.NoError(t, h.ListDispatches(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDriverDispatchesHandler(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		ListDispatchesByDriver(gomock.Any(), int64(42), 0, 0).
		Return([]*models.Dispatch{}, nil)

	c, rec := newEchoContext(http.MethodGet, "/internal/drivers/42/dispatches", "")
	c.SetParamNames("driverID")
	c.SetParamValues("42")

	require.NoError(t, h.ListDriverDispatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListDriverDispatchesHandlerBadID(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newEchoContext(http.MethodGet, "/internal/drivers/abc/dispatches", "")
	c.SetParamNames("driverID")
	c.SetParamValues("abc")

	require.NoError(t, h.ListDriverDispatches(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingDispatchHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	d := testDispatch(models.DispatchStatusArrived)

	uc.EXPECT().GetDispatchByBookingID(gomock.Any(), int64(7)).Return(d, nil)

	c, rec := newEchoContext(http.MethodGet, "/internal/bookings/7/dispatch", "")
	c.SetParamNames("bookingID")
	c.SetParamValues("7")

	require.NoError(t, h.GetBookingDispatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDispatchDetailsHandler(t *testing.T) {
	h, uc := newTestHandler(t)
	d := testDispatch(models.DispatchStatusDispatched)
	id := d.DispatchID.String()

	uc.EXPECT().
		GetDispatchWithDetails(gomock.Any(), id).
		Return(&models.DispatchWithDetails{
			Dispatch: *d,
			Booking:  models.Booking{BookingID: d.BookingID, Source: "Tanjung Priok"},
			Driver:   models.Driver{EmployeeID: 42, Name: "Asep"},
		}, nil)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches/"+id+"/details", "")
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.GetDispatchDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tanjung Priok")
}

func TestGetDispatchDetailsHandlerIncomplete(t *testing.T) {
	h, uc := newTestHandler(t)
	id := uuid.NewString()

	uc.EXPECT().GetDispatchWithDetails(gomock.Any(), id).Return(nil, models.ErrIncompleteJoin)

	c, rec := newEchoContext(http.MethodGet, "/internal/dispatches/"+id+"/details", "")
	c.SetParamNames("dispatchID")
	c.SetParamValues(id)

	require.NoError(t, h.GetDispatchDetails(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
