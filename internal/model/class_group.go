package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassGroup представляет учебную группу (класс).
// Пересечения занятий по времени проверяются в пределах одной группы
type ClassGroup struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
