package tracking

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"cargo-tracking/logger"
	shipmentModel "cargo-tracking/models/shipment"
	trackingModel "cargo-tracking/models/tracking"
	userModel "cargo-tracking/models/user"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPublicTrackApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.User{},
		&shipmentModel.Shipment{},
		&trackingModel.TrackingStage{},
		&shipmentModel.ShipmentStatusEvent{},
	))

	owner := userModel.User{Uuid: "owner-uuid", Username: "operator1", LegalName: "Operator", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)

	shp := shipmentModel.Shipment{
		UserID:         owner.ID,
		ShipmentNumber: "SHP-2025-001",
		Type:           shipmentModel.ShipmentTypeImport,
		Status:         shipmentModel.ShipmentStatusPending,
		Consignor:      "Jebel Ali Freight FZE",
		Consignee:      "Port Sudan Trading LLC",
	}
	require.NoError(t, db.Create(&shp).Error)

	controller := NewTrackingController(db, logger.NewAsyncLogger(db))
	result, err := controller.Service.InitializeStages(shp.ID, owner.ID)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/track/:trackingNumber", controller.PublicTrack)
	return app, result.TrackingNumber
}

func TestPublicTrackEndpoint(t *testing.T) {
	app, trackingNumber := setupPublicTrackApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/track/"+trackingNumber, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Status int `json:"status"`
		Data   struct {
			TrackingNumber     string `json:"tracking_number"`
			ConsigneeFirstName string `json:"consignee_first_name"`
			CurrentStage       string `json:"current_stage"`
			Stages             []struct {
				StageType string `json:"stage_type"`
				Status    string `json:"status"`
			} `json:"stages"`
			Progress struct {
				Total int `json:"total"`
			} `json:"progress"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))

	require.Equal(t, trackingNumber, payload.Data.TrackingNumber)
	require.Equal(t, "Port", payload.Data.ConsigneeFirstName)
	require.Equal(t, "PRE_ARRIVAL_DOCS", payload.Data.CurrentStage)
	require.Len(t, payload.Data.Stages, 11)
	require.Equal(t, 11, payload.Data.Progress.Total)

	// Internal fields never leak into the public payload.
	require.NotContains(t, string(body), "notes")
	require.NotContains(t, string(body), "updated_by")
	require.NotContains(t, string(body), "Trading LLC")
}

func TestPublicTrackEndpointNotFound(t *testing.T) {
	app, _ := setupPublicTrackApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/track/TRK-NOSUCH", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
