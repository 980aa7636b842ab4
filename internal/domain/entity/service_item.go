package entity

// ServiceItem is a clinic service card. Slug is unique across all services.
type ServiceItem struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug               string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	TitleRu            string  `gorm:"type:varchar(255);not null" json:"title_ru"`
	TitleKk            string  `gorm:"type:varchar(255);not null" json:"title_kk"`
	ShortDescriptionRu *string `gorm:"type:text" json:"short_description_ru,omitempty"`
	ShortDescriptionKk *string `gorm:"type:text" json:"short_description_kk,omitempty"`
	FullDescriptionRu  *string `gorm:"type:text" json:"full_description_ru,omitempty"`
	FullDescriptionKk  *string `gorm:"type:text" json:"full_description_kk,omitempty"`
	IsActive           bool    `gorm:"not null;index" json:"is_active"`
}

func (ServiceItem) TableName() string {
	return "services"
}
