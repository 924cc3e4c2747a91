package repositories

import (
	"errors"

	"github.com/linskybing/naming-go/db"
	"github.com/linskybing/naming-go/models"
	"gorm.io/gorm"
)

type FormConfigRepo interface {
	Create(config *models.FormConfiguration) error
	Update(config *models.FormConfiguration) error
	GetByID(id uint) (models.FormConfiguration, error)
	List() ([]models.FormConfiguration, error)
	GetActive() (*models.FormConfiguration, error)
	Activate(id uint) error
	Delete(id uint) error
	SoftDelete(id uint) error
}

type DBFormConfigRepo struct{}

func (r *DBFormConfigRepo) Create(config *models.FormConfiguration) error {
	return db.DB.Create(config).Error
}

func (r *DBFormConfigRepo) Update(config *models.FormConfiguration) error {
	return db.DB.Save(config).Error
}

func (r *DBFormConfigRepo) GetByID(id uint) (models.FormConfiguration, error) {
	var config models.FormConfiguration
	err := db.DB.First(&config, id).Error
	return config, err
}

func (r *DBFormConfigRepo) List() ([]models.FormConfiguration, error) {
	var configs []models.FormConfiguration
	err := db.DB.Order("created_at desc").Find(&configs).Error
	return configs, err
}

// GetActive returns the single active configuration, or nil when no
// configuration is active. The empty case is not an error.
func (r *DBFormConfigRepo) GetActive() (*models.FormConfiguration, error) {
	var config models.FormConfiguration
	err := db.DB.Where("is_active = ?", true).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Activate flips the target on and every other configuration off in one
// transaction. A reader never observes two active rows, and a failed
// activate leaves the previous active untouched.
func (r *DBFormConfigRepo) Activate(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		// Deactivate first so the partial unique index on is_active never
		// sees two active rows. Rollback restores the previous active if
		// the target turns out not to exist.
		if err := tx.Model(&models.FormConfiguration{}).
			Where("is_active = ? AND id <> ?", true, id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.FormConfiguration{}).
			Where("id = ?", id).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBFormConfigRepo) Delete(id uint) error {
	return db.DB.Unscoped().Delete(&models.FormConfiguration{}, id).Error
}

func (r *DBFormConfigRepo) SoftDelete(id uint) error {
	return db.DB.Delete(&models.FormConfiguration{}, id).Error
}
