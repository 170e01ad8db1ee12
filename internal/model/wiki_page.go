package model

import "gorm.io/gorm"

// WikiPage is a free-form documentation page. Content holds storage-form
// link text; Version counts saves.
type WikiPage struct {
	gorm.Model
	Title   string `gorm:"not null"`
	Slug    string `gorm:"size:255;uniqueIndex:idx_wiki_pages_slug;not null"`
	Content string `gorm:"not null"`
	Version int64
}

func (WikiPage) TableName() string {
	return "wiki_pages"
}

// WikiRevision is a compressed snapshot of a page at one version.
type WikiRevision struct {
	gorm.Model
	PageID      uint   `gorm:"not null;uniqueIndex:idx_wiki_revisions_page_version"`
	Version     int64  `gorm:"not null;uniqueIndex:idx_wiki_revisions_page_version"`
	Title       string
	Content     []byte `gorm:"not null"`
	Compression string // nop, gzip, brotli, lz4
}

func (WikiRevision) TableName() string {
	return "wiki_revisions"
}
