package account

import (
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/policy"
)

type Repository interface {
	Create(db *gorm.DB, a *Account) error
	Save(db *gorm.DB, a *Account) error
	FindByEmail(db *gorm.DB, email string) (*Account, error)
	FindByID(db *gorm.DB, id string) (*Account, error)
	FindByIDAndRole(db *gorm.DB, id string, role policy.Role) (*Account, error)
	ListByRole(db *gorm.DB, role policy.Role) ([]Account, error)
	ListStudentsByDealer(db *gorm.DB, dealerID string) ([]Account, error)
	CountByRole(db *gorm.DB, role policy.Role) (int64, error)
	CountStudentsByDealer(db *gorm.DB, dealerID string) (int64, error)
	ClearDealer(db *gorm.DB, dealerID string) error
	Delete(db *gorm.DB, a *Account) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Create relies on the unique index on email: a concurrent registration
// with the same address surfaces as gorm.ErrDuplicatedKey instead of a
// second row.
func (r *repositoryImpl) Create(db *gorm.DB, a *Account) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) Save(db *gorm.DB, a *Account) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*Account, error) {
	var a Account
	if err := db.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id string) (*Account, error) {
	var a Account
	if err := db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) FindByIDAndRole(db *gorm.DB, id string, role policy.Role) (*Account, error) {
	var a Account
	if err := db.Where("id = ? AND role = ?", id, role).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) ListByRole(db *gorm.DB, role policy.Role) ([]Account, error) {
	var accounts []Account
	err := db.Where("role = ?", role).Order("created_at").Find(&accounts).Error
	return accounts, err
}

func (r *repositoryImpl) ListStudentsByDealer(db *gorm.DB, dealerID string) ([]Account, error) {
	var accounts []Account
	err := db.Where("role = ? AND dealer_id = ?", policy.RoleStudent, dealerID).
		Order("created_at").Find(&accounts).Error
	return accounts, err
}

func (r *repositoryImpl) CountByRole(db *gorm.DB, role policy.Role) (int64, error) {
	var n int64
	err := db.Model(&Account{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) CountStudentsByDealer(db *gorm.DB, dealerID string) (int64, error) {
	var n int64
	err := db.Model(&Account{}).
		Where("role = ? AND dealer_id = ?", policy.RoleStudent, dealerID).
		Count(&n).Error
	return n, err
}

// ClearDealer detaches every student owned by dealerID. Used when the
// dealer is deleted: the students stay, their dealer reference goes.
func (r *repositoryImpl) ClearDealer(db *gorm.DB, dealerID string) error {
	return db.Model(&Account{}).
		Where("role = ? AND dealer_id = ?", policy.RoleStudent, dealerID).
		Update("dealer_id", nil).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, a *Account) error {
	return db.Delete(a).Error
}
