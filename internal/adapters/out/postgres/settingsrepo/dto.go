// Package settingsrepo persists operator settings as key/value rows.
package settingsrepo

import "time"

type SettingDTO struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SettingDTO) TableName() string {
	return "settings"
}
