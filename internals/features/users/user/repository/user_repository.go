// internals/features/users/user/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "pelayananku_backend/internals/features/users/user/model"
)

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindAllUsers(db *gorm.DB) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func UpdateUser(db *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Updates(updates).Error
}

func DeleteUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Delete(&userModel.UserModel{}, "id = ?", userID).Error
}

// SetDepartment memasang / melepas (nil) department seorang user
func SetDepartment(db *gorm.DB, userID uuid.UUID, departmentID *uuid.UUID) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("department_id", departmentID).Error
}

// CompleteSetup menandai setup awal selesai + set role hasil kode undangan
func CompleteSetup(db *gorm.DB, userID uuid.UUID, role string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"role":                    role,
			"initial_setup_completed": true,
		}).Error
}
