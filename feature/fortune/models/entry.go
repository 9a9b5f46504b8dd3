package models

// Entry is one stored text record. Identifiers are unique but not contiguous.
type Entry struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Body string `gorm:"column:body" json:"body"`
}
