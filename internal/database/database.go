package database

import (
	"log"
	"strings"

	"beautystudio/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError is left off on purpose: it would flatten Postgres unique
	// violations into gorm.ErrDuplicatedKey and lose the constraint name that
	// repository.IsUniqueViolation scopes on.
	cfg := &gorm.Config{}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate creates the schema plus the partial unique index that enforces
// no-double-booking: cancelled rows are excluded so a freed slot can be
// rebooked.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.StudioService{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.ShopOrder{},
		&domain.ShopOrderItem{},
		&domain.CourseOrder{},
		&domain.ScheduleSetting{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		 ON bookings (date, slot_time) WHERE status <> 'cancelled'`,
	).Error
}
