package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	departmentModel "pelayananku_backend/internals/features/departments/department/model"
)

func CreateDepartment(db *gorm.DB, department *departmentModel.DepartmentModel) error {
	return db.Create(department).Error
}

func FindDepartmentByID(db *gorm.DB, departmentID uuid.UUID) (*departmentModel.DepartmentModel, error) {
	var department departmentModel.DepartmentModel
	if err := db.First(&department, "id = ?", departmentID).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindDepartmentWithUsers memuat department beserta ringkasan anggotanya
func FindDepartmentWithUsers(db *gorm.DB, departmentID uuid.UUID) (*departmentModel.DepartmentModel, error) {
	var department departmentModel.DepartmentModel
	if err := db.
		Preload("Users", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "role", "avatar_url", "department_id")
		}).
		First(&department, "id = ?", departmentID).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func FindAllDepartments(db *gorm.DB) ([]departmentModel.DepartmentModel, error) {
	var departments []departmentModel.DepartmentModel
	if err := db.
		Preload("Users", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "role", "avatar_url", "department_id")
		}).
		Order("created_at DESC").
		Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func UpdateDepartment(db *gorm.DB, departmentID uuid.UUID, updates map[string]interface{}) error {
	return db.Model(&departmentModel.DepartmentModel{}).
		Where("id = ?", departmentID).
		Updates(updates).Error
}

func DeleteDepartment(db *gorm.DB, departmentID uuid.UUID) error {
	return db.Delete(&departmentModel.DepartmentModel{}, "id = ?", departmentID).Error
}
