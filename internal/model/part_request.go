package model

import "gorm.io/gorm"

// PartRequest asks for a replacement part for a machine. Text holds
// storage-form link text.
type PartRequest struct {
	gorm.Model
	MachineID uint   `gorm:"index;not null"`
	Text      string `gorm:"not null"`
	Status    string `gorm:"default:'requested'"` // requested, ordered, received, installed
}

func (PartRequest) TableName() string {
	return "part_requests"
}

// PartRequestUpdate is a progress note on a part request.
type PartRequestUpdate struct {
	gorm.Model
	PartRequestID uint   `gorm:"index;not null"`
	Text          string `gorm:"not null"`
}

func (PartRequestUpdate) TableName() string {
	return "part_request_updates"
}
