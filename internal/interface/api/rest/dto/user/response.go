package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		UUID     uuid.UUID `json:"uuid"`
		Email    string    `json:"email"`
		Role     string    `json:"role"`
		Name     string    `json:"name"`
		Lastname string    `json:"lastname"`
	}
)
