package user

import (
	"taxdocs-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:     uDomain.UUID,
		Email:    uDomain.Email,
		Role:     uDomain.Role,
		Name:     uDomain.Name,
		Lastname: uDomain.Lastname,
	}

	return u
}
