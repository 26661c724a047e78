// Package model holds the GORM models of the SQL key-value backend.
package model

import "time"

// KVEntryModel mirrors the 'kv_entries' table. Keys are "{userID}/{name}".
type KVEntryModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
