package models

// KbArticle is a knowledge-base entry (troubleshooting guides, manuals).
// Articles participate in the soft-delete lifecycle like the form tables.
type KbArticle struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255"   json:"title"`
	Category string `gorm:"size:80"    json:"category"`
	Body     string `gorm:"type:text"  json:"body"`

	FormMeta
}

func (KbArticle) TableName() string { return "kb_articles" }
