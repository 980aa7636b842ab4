package entity

import "time"

// CallbackStatusNew is the only status this service ever assigns.
const CallbackStatusNew = "NEW"

// CallbackRequest is a visitor asking the clinic to call them back.
type CallbackRequest struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(80);not null" json:"phone"`
	Status    string    `gorm:"type:varchar(32);not null;default:NEW" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (CallbackRequest) TableName() string {
	return "callback_requests"
}
