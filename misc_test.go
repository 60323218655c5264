package poquery

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db.Debug(), mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db.Debug(), mock, nil
}

// newCatalogDB opens an in-memory store with the purchase_orders schema for
// end-to-end pagination scenarios.
func newCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&PurchaseOrder{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return db
}

// seedCatalog inserts n generated purchase orders one by one, so ids run
// 1..n in insertion order.
func seedCatalog(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	statuses := []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	for i := 1; i <= n; i++ {
		order := PurchaseOrder{
			ItemName:     fmt.Sprintf("Item %03d", i),
			OrderDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			DeliveryDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Quantity:     1 + i%5,
			UnitPrice:    float64(10 * (1 + i%7)),
			Status:       statuses[i%len(statuses)],
			Vendor:       fmt.Sprintf("Vendor %d", i%3),
			Category:     fmt.Sprintf("Category %d", i%4),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("seed order %d: %v", i, err)
		}
	}
}
