package mapper

import (
	authdto "github.com/AlibekovAA/caption-studio/backend/internal/auth/service/dto"
	userdomain "github.com/AlibekovAA/caption-studio/backend/internal/user/domain"
)

func UserToDTO(user userdomain.User) authdto.User {
	return authdto.User{
		ID:        string(user.ID),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

func UsersToDTO(users []userdomain.User) []authdto.User {
	out := make([]authdto.User, 0, len(users))
	for _, u := range users {
		out = append(out, UserToDTO(u))
	}
	return out
}
