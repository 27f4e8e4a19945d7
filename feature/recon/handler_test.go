package recon

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recon-manager/core/reconcile"
	"recon-manager/core/storage/mocks"
	"recon-manager/feature/recon/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil, reconcile.Config{})
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleRun(t *testing.T) {
	app, _ := setupTestApp(t)
	left, right := samplePayloads()

	resp := postJSON(t, app, "/recon/run", models.ReconcileRequest{Left: left, Right: right})
	assert.Equal(t, 200, resp.StatusCode)

	var report models.ReconcileReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.Summary.Matched)
	assert.Equal(t, 2, report.Summary.UnmatchedLeft)
	assert.Equal(t, 2, report.Summary.UnmatchedRight)
	assert.Equal(t, []string{"empid", "devloginname", "appname"}, report.Matched.Columns)
	assert.Len(t, report.Matched.Rows, 2)
}

func TestHandleRun_MissingColumn(t *testing.T) {
	app, _ := setupTestApp(t)
	left, right := samplePayloads()

	resp := postJSON(t, app, "/recon/run", models.ReconcileRequest{
		Left:  left,
		Right: right,
		Keys:  models.KeyColumns{LeftID: "employee_id"},
	})
	assert.Equal(t, 422, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "employee_id", body["column"])
	assert.Equal(t, "left", body["side"])
	assert.Contains(t, body["error"], "missing column")
}

func TestHandleRun_BadBody(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/recon/run", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleListExtracts(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(objectStream(
		minio.ObjectInfo{Key: "dev_logins.csv", Size: 120},
	))

	req := httptest.NewRequest("GET", "/recon/extracts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var extracts []models.ExtractInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&extracts))
	assert.Len(t, extracts, 1)
	assert.Equal(t, "dev_logins.csv", extracts[0].Name)
}
