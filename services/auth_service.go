package services

import (
	"errors"

	"github.com/dev-callsign-hawk/diet-wise/config"
	"github.com/dev-callsign-hawk/diet-wise/models"
	"github.com/dev-callsign-hawk/diet-wise/utils"
)

// RegisterUser creates the account row. The profile lives on the same row,
// so registration auto-provisions it.
func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Disabled: false,
	}

	return config.DB.Create(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}
	return user, nil
}
