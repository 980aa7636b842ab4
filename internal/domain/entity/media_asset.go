package entity

// Media asset categories. A category is fixed once the asset is created.
const (
	MediaCategoryDiagnostics = "diagnostics"
	MediaCategoryInterior    = "interior"
)

var mediaCategories = map[string]struct{}{
	MediaCategoryDiagnostics: {},
	MediaCategoryInterior:    {},
}

// IsValidMediaCategory reports whether category is one of the recognised
// gallery categories.
func IsValidMediaCategory(category string) bool {
	_, ok := mediaCategories[category]
	return ok
}

// MediaAsset is a categorised gallery photo.
type MediaAsset struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string  `gorm:"type:varchar(64);not null;index" json:"category"`
	Title       *string `gorm:"type:varchar(255)" json:"title,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	PhotoURL    string  `gorm:"column:photo_url;type:varchar(512);not null" json:"photo_url"`
}

func (MediaAsset) TableName() string {
	return "media_assets"
}
