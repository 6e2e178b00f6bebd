package converter

import (
	dto "virtual_casino/internal/api/dto/auth"
	"virtual_casino/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
