package model

import "gorm.io/gorm"

// LogEntry is one maintenance log record, optionally attached to the
// problem it addressed. Text holds storage-form link text.
type LogEntry struct {
	gorm.Model
	MachineID uint   `gorm:"index;not null"`
	ProblemID *uint  `gorm:"index"`
	Text      string `gorm:"not null"`
	Author    string
}

func (LogEntry) TableName() string {
	return "log_entries"
}
