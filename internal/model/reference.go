package model

import "time"

// RecordReference is a derived edge: the source record's text mentions
// the target record. The composite unique index collapses duplicate
// mentions to a single row. Rows are only ever created and deleted by the
// reference synchronizer, never edited in place.
type RecordReference struct {
	ID         uint      `gorm:"primarykey"`
	CreatedAt  time.Time
	SourceType string `gorm:"size:32;not null;uniqueIndex:idx_record_references_edge;index:idx_record_references_source"`
	SourceID   uint   `gorm:"not null;uniqueIndex:idx_record_references_edge;index:idx_record_references_source"`
	TargetType string `gorm:"size:32;not null;uniqueIndex:idx_record_references_edge;index:idx_record_references_target"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_record_references_edge;index:idx_record_references_target"`
}

func (RecordReference) TableName() string {
	return "record_references"
}
