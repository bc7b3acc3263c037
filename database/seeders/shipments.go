package seeders

import (
	"log"
	"time"

	"cargo-tracking/models/shipment"
	"cargo-tracking/models/tracking"
	"cargo-tracking/models/user"
	trackingService "cargo-tracking/services/tracking"

	"gorm.io/gorm"
)

type demoShipment struct {
	ShipmentNumber  string
	TrackingNumber  string
	Type            shipment.ShipmentType
	Status          shipment.ShipmentStatus
	Consignor       string
	Consignee       string
	VesselName      string
	ContainerNumber string
	Weight          float64
	Quantity        int
	ArrivalOffset   time.Duration // relative to now, keeps the demo timeline fresh
	CurrentStage    tracking.StageType
}

// SeedDemoShipments inserts two demo shipments with populated tracking
// timelines so the public tracking page has something to show out of the box.
func SeedDemoShipments(db *gorm.DB) {
	log.Printf("🔍 Checking demo shipments data integrity...")

	demos := []demoShipment{
		{
			ShipmentNumber:  "SHP-2025-001",
			TrackingNumber:  "TRK-ABC123",
			Type:            shipment.ShipmentTypeImport,
			Status:          shipment.ShipmentStatusArrived,
			Consignor:       "Jebel Ali Freight FZE",
			Consignee:       "Port Sudan Trading LLC",
			VesselName:      "MSC Aurora",
			ContainerNumber: "MSCU1234567",
			Weight:          18400,
			Quantity:        2,
			ArrivalOffset:   -72 * time.Hour,
			CurrentStage:    tracking.StageCustomsPayment,
		},
		{
			ShipmentNumber:  "SHP-2025-002",
			TrackingNumber:  "TRK-XYZ789",
			Type:            shipment.ShipmentTypeImport,
			Status:          shipment.ShipmentStatusCleared,
			Consignor:       "Osaka Auto Export Co.",
			Consignee:       "Khartoum Motors Ltd",
			VesselName:      "Ever Glory",
			ContainerNumber: "EGHU7654321",
			Weight:          9600,
			Quantity:        4,
			ArrivalOffset:   -240 * time.Hour,
			CurrentStage:    tracking.StageLoading,
		},
	}

	var admin user.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		log.Printf("❌ Demo shipments need the admin user, seeding skipped: %v", err)
		return
	}

	seeded := 0
	for _, demo := range demos {
		var count int64
		if err := db.Model(&shipment.Shipment{}).
			Where("shipment_number = ?", demo.ShipmentNumber).
			Count(&count).Error; err != nil {
			log.Printf("❌ Failed to check shipment %s: %v", demo.ShipmentNumber, err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := seedDemoShipment(db, admin.ID, demo); err != nil {
			log.Printf("❌ Failed to seed shipment %s: %v", demo.ShipmentNumber, err)
			continue
		}
		log.Printf("✅ Added demo shipment: %s (%s)", demo.ShipmentNumber, demo.TrackingNumber)
		seeded++
	}

	if seeded == 0 {
		log.Printf("✅ All demo shipments are already present. No seeding needed.")
		return
	}
	log.Printf("🎉 Seeding completed! Inserted %d demo shipments", seeded)
}

func seedDemoShipment(db *gorm.DB, ownerID uint, demo demoShipment) error {
	arrival := time.Now().Add(demo.ArrivalOffset).Truncate(time.Hour)
	etas := trackingService.CalculateInitialETAs(arrival)
	currentOrder := tracking.OrderOf(demo.CurrentStage)

	return db.Transaction(func(tx *gorm.DB) error {
		trackingNumber := demo.TrackingNumber
		vessel := demo.VesselName
		container := demo.ContainerNumber
		record := shipment.Shipment{
			ShipmentNumber:  demo.ShipmentNumber,
			TrackingNumber:  &trackingNumber,
			Type:            demo.Type,
			Status:          demo.Status,
			Consignor:       demo.Consignor,
			Consignee:       demo.Consignee,
			VesselName:      &vessel,
			ContainerNumber: &container,
			Weight:          demo.Weight,
			Quantity:        demo.Quantity,
			ArrivalDate:     &arrival,
			UserID:          ownerID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		var stages []tracking.TrackingStage
		for _, stageType := range tracking.StageTypesInOrder() {
			stage := tracking.TrackingStage{
				ShipmentID: record.ID,
				StageType:  stageType,
				Status:     tracking.StageStatusPending,
			}
			if eta, ok := etas[stageType]; ok {
				estimated := eta
				stage.EstimatedAt = &estimated
			}
			order := tracking.OrderOf(stageType)
			switch {
			case order < currentOrder:
				started := arrival.Add(time.Duration(order-2) * time.Hour)
				completed := started.Add(time.Hour)
				stage.Status = tracking.StageStatusCompleted
				stage.StartedAt = &started
				stage.CompletedAt = &completed
			case order == currentOrder:
				started := time.Now().Add(-30 * time.Minute)
				stage.Status = tracking.StageStatusInProgress
				stage.StartedAt = &started
			}
			stages = append(stages, stage)
		}
		if err := tx.Create(&stages).Error; err != nil {
			return err
		}

		event := shipment.ShipmentStatusEvent{
			ShipmentID: record.ID,
			Status:     demo.Status,
			CreatedBy:  ownerID,
		}
		return tx.Create(&event).Error
	})
}
