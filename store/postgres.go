package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const KVTable = "lending_kv"

type kvRecord struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (kvRecord) TableName() string { return KVTable }

// GormStore keeps one row per key in lending_kv.
type GormStore struct {
	DB *gorm.DB
}

// OpenPostgres connects with the given DSN and migrates the kv table.
func OpenPostgres(dsn string) (*GormStore, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewGormStore(conn)
}

func NewGormStore(conn *gorm.DB) (*GormStore, error) {
	if err := conn.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", KVTable, err)
	}
	return &GormStore{DB: conn}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec kvRecord
	err := s.DB.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	rec := kvRecord{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (s *GormStore) Driver() Driver { return DriverPostgres }

func (s *GormStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// PostgresDSN builds a DSN from DB_* style parts, the way the service has always been configured.
func PostgresDSN(host, user, password, name, port string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, name, port)
}
