package main

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"infix-calc-go/model"
)

// Store is the evaluation history, kept in SQLite through gorm.
type Store struct {
	DB *gorm.DB
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.EvalRecord{})
}

func OpenStore(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases from splitting across the pool.
	sqlDB.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating %s: %w", dbPath, err)
	}
	return &Store{DB: db}, nil
}

func (this *Store) Close() error {
	sqlDB, err := this.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
