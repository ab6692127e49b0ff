package model

import "time"

// NonTeachingDay представляет неучебный день (праздник, каникулы).
// Его объявление каскадно отменяет все занятия на эту дату
type NonTeachingDay struct {
	ID          int64     `json:"id"`
	Day         time.Time `json:"day"` // только дата
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
