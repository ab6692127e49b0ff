package model

import (
	"time"

	"github.com/google/uuid"
)

// Subject представляет предмет (дисциплину), преподаваемый в группе
type Subject struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
