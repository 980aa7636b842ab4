package entity

// Doctor is a clinic staff member shown on the public site.
type Doctor struct {
	ID              int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"type:varchar(255);not null" json:"name"`
	Role            string  `gorm:"type:varchar(255);not null" json:"role"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	DescriptionRu   *string `gorm:"type:text" json:"description_ru,omitempty"`
	DescriptionKk   *string `gorm:"type:text" json:"description_kk,omitempty"`
	// PhotoURL holds a storage-relative path such as "doctors/a1b2_photo.jpg".
	PhotoURL *string `gorm:"column:photo_url;type:varchar(512)" json:"photo_url,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
