package model

import "gorm.io/gorm"

// Problem is a reported fault on a machine. Description holds
// storage-form link text.
type Problem struct {
	gorm.Model
	MachineID   uint   `gorm:"index;not null"`
	Description string `gorm:"not null"`
	Status      string `gorm:"default:'open'"` // open, fixed, not-a-problem
	ReportedBy  string
	// ReportKey correlates a problem with the chat message it was
	// captured from, when the report arrived through the Discord bridge.
	ReportKey string `gorm:"size:36;index:idx_problems_report_key"`
}

func (Problem) TableName() string {
	return "problems"
}
