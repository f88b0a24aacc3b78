package storage

import (
	"errors"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the single table behind the GormBackend: one row per collection key.
type Blob struct {
	Key  string `gorm:"primaryKey;size:191"`
	Data []byte `gorm:"type:longblob"`
}

// GormBackend persists blobs in MySQL through GORM.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend wraps an existing GORM connection.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// OpenGorm connects to MySQL and migrates the blobs table.
func OpenGorm(dsn string) (*GormBackend, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return NewGormBackend(db), nil
}

func (b *GormBackend) Get(key string) ([]byte, bool, error) {
	var blob Blob
	err := b.db.Take(&blob, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob.Data, true, nil
}

func (b *GormBackend) Set(key string, data []byte) error {
	blob := Blob{Key: key, Data: data}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&blob).Error
}

func (b *GormBackend) Delete(key string) error {
	return b.db.Delete(&Blob{}, "`key` = ?", key).Error
}
