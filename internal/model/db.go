package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MachineModel{},
		&Machine{},
		&Problem{},
		&LogEntry{},
		&PartRequest{},
		&PartRequestUpdate{},
		&WikiPage{},
		&WikiRevision{},
		&RecordReference{},
	)
}
