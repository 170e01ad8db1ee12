package model

import "gorm.io/gorm"

// MachineModel is a catalog entry for a pinball title, e.g. Williams
// Blackout. Physical machines on the floor point at one.
type MachineModel struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Slug         string `gorm:"size:255;uniqueIndex:idx_machine_models_slug;not null"`
	Manufacturer string
	Year         int
}

func (MachineModel) TableName() string {
	return "machine_models"
}

// Machine is a physical machine in the museum.
type Machine struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Slug     string `gorm:"size:255;uniqueIndex:idx_machines_slug;not null"`
	ModelID  uint   `gorm:"index"`
	Location string // floor, storage, workshop
	Status   string `gorm:"default:'ok'"` // ok, needs-attention, out-of-order
}

func (Machine) TableName() string {
	return "machines"
}
