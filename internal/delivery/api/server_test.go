package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insulink/config"
	"insulink/internal/delivery/api/middleware"
	"insulink/internal/delivery/api/router"
	"insulink/internal/delivery/api/router/handler"
	"insulink/internal/domain/entity"
	domainerrors "insulink/internal/domain/errors"
	"insulink/internal/domain/service"
	mockSvc "insulink/internal/mocks/service"
	mockUsecase "insulink/internal/mocks/usecase"
	"insulink/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixtures struct {
	echo        *echo.Echo
	userID      uuid.UUID
	verifier    *mockSvc.MockTokenVerifier
	ingestionUC *mockUsecase.MockIngestionUsecase
	reportUC    *mockUsecase.MockReportUsecase
	deviceUC    *mockUsecase.MockDeviceUsecase
	userUC      *mockUsecase.MockUserUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	fx := apiFixtures{
		userID:      uuid.New(),
		verifier:    mockSvc.NewMockTokenVerifier(t),
		ingestionUC: mockUsecase.NewMockIngestionUsecase(t),
		reportUC:    mockUsecase.NewMockReportUsecase(t),
		deviceUC:    mockUsecase.NewMockDeviceUsecase(t),
		userUC:      mockUsecase.NewMockUserUsecase(t),
	}

	fx.verifier.EXPECT().VerifyAccessToken(testToken).Return(&service.Claims{UserID: fx.userID}, nil).Maybe()
	fx.verifier.EXPECT().VerifyAccessToken(mock.MatchedBy(func(token string) bool { return token != testToken })).
		Return(nil, errors.New("signature is invalid")).Maybe()

	fx.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		DeviceHandler:    handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: fx.deviceUC, Logger: logger}),
		UploadHandler:    handler.NewUploadHandler(handler.UploadHandlerParams{IngestionUC: fx.ingestionUC, Logger: logger}),
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{ReportUC: fx.reportUC, Logger: logger}),
		UserHandler:      handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Verifier: fx.verifier, Logger: logger}),
		MetricsHandler:   http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "# metrics\n") }),
		Config:           cfg,
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx apiFixtures) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAPI_Health_EchoesRequestID(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "trace-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))

	env := decode(t, rec)
	assert.Equal(t, "trace-123", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestAPI_Metrics(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/metrics", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics\n", rec.Body.String())
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/dashboard/today", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/today", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec = httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
}

func TestAPI_Upload(t *testing.T) {
	fx := createTestAPI(t)

	body := `{
		"device": {"deviceId": "SN-1", "batteryPercentage": 80, "totalReservoir": 50},
		"Glucose": [{"date": "2024-05-01", "BgValue": [{"readingTime": "0800", "glucoseReading": 110, "type": "0"}]}],
		"Insulin": []
	}`

	fx.ingestionUC.EXPECT().
		Ingest(mock.Anything, fx.userID, mock.MatchedBy(func(p *usecase.UploadPayload) bool {
			return p.Device != nil && p.Device.SerialNumber == "SN-1" &&
				len(p.Glucose) == 1 && len(p.Glucose[0].Samples) == 1 &&
				*p.Glucose[0].Samples[0].Value == 110
		})).
		Return(&usecase.IngestionResult{Glucose: usecase.SeriesCounts{Submitted: 1, Inserted: 1}}, nil)

	rec := fx.do(http.MethodPost, "/devices/upload", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result usecase.IngestionResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.Equal(t, 1, result.Glucose.Inserted)
}

func TestAPI_Upload_ValidationDetails(t *testing.T) {
	fx := createTestAPI(t)

	fx.ingestionUC.EXPECT().
		Ingest(mock.Anything, fx.userID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.NewValidationError(
			domainerrors.FieldViolation{Field: "device", Reason: "is required"},
		), "failed to ingest upload"))

	rec := fx.do(http.MethodPost, "/devices/upload", `{}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `[{"field":"device","reason":"is required"}]`, string(env.Error.Details))
}

func TestAPI_Upload_MalformedBody(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/devices/upload", `{"device":`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestAPI_Upload_UnregisteredDevice(t *testing.T) {
	fx := createTestAPI(t)

	fx.ingestionUC.EXPECT().
		Ingest(mock.Anything, fx.userID, mock.Anything).
		Return(nil, domainerrors.ErrDeviceNotRegistered.WithDetails("serial number SN-9"))

	rec := fx.do(http.MethodPost, "/devices/upload", `{"device":{"deviceId":"SN-9"}}`, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_NOT_REGISTERED", decode(t, rec).Error.Code)
}

func TestAPI_RegisterDevice_Validation(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/devices", `{"model":"mini"}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t,
		`[{"field":"serial_number","reason":"is required"},{"field":"model","reason":"must be one of standard pro"}]`,
		string(env.Error.Details))
}

func TestAPI_RegisterDevice(t *testing.T) {
	fx := createTestAPI(t)
	manufactured := time.Date(2023, time.November, 2, 0, 0, 0, 0, time.UTC)

	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, &usecase.DeviceInfo{
			SerialNumber:   "SN-1",
			Model:          entity.DeviceModelPro,
			ManufacturedAt: &manufactured,
		}).
		Return(&entity.Device{ID: uuid.New(), SerialNumber: "SN-1", Model: entity.DeviceModelPro}, nil)

	rec := fx.do(http.MethodPost, "/devices", `{"serial_number":"SN-1","model":"pro","manufactured_at":"2023-11-02"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_GetDevice_StoreFailureHidesDetails(t *testing.T) {
	fx := createTestAPI(t)
	deviceID := uuid.New()

	fx.deviceUC.EXPECT().
		GetDevice(mock.Anything, deviceID).
		Return(nil, errors.New("dial tcp: connection refused"))

	rec := fx.do(http.MethodGet, "/devices/"+deviceID.String(), "", true)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAPI_Report_ParsesWindow(t *testing.T) {
	fx := createTestAPI(t)
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

	fx.reportUC.EXPECT().
		Summary(mock.Anything, fx.userID, entity.DateWindow{Start: &start, End: &end}).
		Return(&entity.Summary{GlucoseAvg: 120, GlucoseSum: 240}, nil)

	rec := fx.do(http.MethodGet, "/dashboard/report?start=2024-05-01&end=2024-05-31", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary entity.Summary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &summary))
	assert.InDelta(t, 120, summary.GlucoseAvg, 1e-9)
}

func TestAPI_Report_InvalidDates(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/dashboard/history?start=yesterday&end=2024-13-40", "", true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`[{"field":"start","reason":"is not a valid date"},{"field":"end","reason":"is not a valid date"}]`,
		string(decode(t, rec).Error.Details))
}

func TestAPI_Monthly(t *testing.T) {
	fx := createTestAPI(t)

	fx.reportUC.EXPECT().
		Monthly(mock.Anything, fx.userID, 3).
		Return(&entity.MonthlyReport{}, nil)

	rec := fx.do(http.MethodGet, "/dashboard/monthly/3", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/dashboard/monthly/three", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_SaveProfile(t *testing.T) {
	fx := createTestAPI(t)

	fx.userUC.EXPECT().
		SaveProfile(mock.Anything, fx.userID, usecase.ProfileInput{FirstName: "Ada", LastName: "Lovelace"}).
		Return(&entity.User{ID: fx.userID, FirstName: "Ada", LastName: "Lovelace"}, nil)

	rec := fx.do(http.MethodPut, "/users/me", `{"first_name":"Ada","last_name":"Lovelace"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/users/me", `{"first_name":"Ada","email":"not-an-email"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
