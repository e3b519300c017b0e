package dbmysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"contentshop/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL.
func NewMySQL(cnf *config.Config) (*gorm.DB, error) {
	dsn := cnf.DSN()
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN is not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate runs AutoMigrate for every table in dependency order. Users first
// because nearly everything carries a foreign key to them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Content{},
		&FileRef{},
		&Interaction{},
		&Product{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Story{},
		&WishlistItem{},
		&ProductReview{},
		&Coupon{},
		&CouponRedemption{},
	)
}
