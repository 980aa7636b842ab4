package entity

// DefaultReviewRating is applied when a review is submitted without a rating.
const DefaultReviewRating = 5

// Review is a patient testimonial, optionally with a video and poster image.
type Review struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName string  `gorm:"type:varchar(255);not null" json:"patient_name"`
	Rating      int     `gorm:"not null" json:"rating"`
	TextRu      *string `gorm:"type:text" json:"text_ru,omitempty"`
	TextKk      *string `gorm:"type:text" json:"text_kk,omitempty"`
	VideoURL    *string `gorm:"column:video_url;type:text" json:"video_url,omitempty"`
	PosterURL   *string `gorm:"column:poster_url;type:varchar(512)" json:"poster_url,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
