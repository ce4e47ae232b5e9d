package submission

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(db *gorm.DB, s *TestSubmission) error
	FindByAccount(db *gorm.DB, accountID string) (*TestSubmission, error)
	ListByAccounts(db *gorm.DB, accountIDs []string) ([]TestSubmission, error)
	Count(db *gorm.DB) (int64, error)
	CountByAccounts(db *gorm.DB, accountIDs []string) (int64, error)
	DeleteByAccount(db *gorm.DB, accountID string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Upsert writes the submission in a single atomic statement keyed by
// account_id, so a resubmission overwrites rather than duplicating and
// concurrent submissions from one account cannot race into two rows.
func (r *repositoryImpl) Upsert(db *gorm.DB, s *TestSubmission) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"personality_type", "answers"}),
	}).Create(s).Error
}

func (r *repositoryImpl) FindByAccount(db *gorm.DB, accountID string) (*TestSubmission, error) {
	var s TestSubmission
	if err := db.Where("account_id = ?", accountID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) ListByAccounts(db *gorm.DB, accountIDs []string) ([]TestSubmission, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	var subs []TestSubmission
	err := db.Where("account_id IN ?", accountIDs).Find(&subs).Error
	return subs, err
}

func (r *repositoryImpl) Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&TestSubmission{}).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) CountByAccounts(db *gorm.DB, accountIDs []string) (int64, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := db.Model(&TestSubmission{}).Where("account_id IN ?", accountIDs).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) DeleteByAccount(db *gorm.DB, accountID string) error {
	return db.Where("account_id = ?", accountID).Delete(&TestSubmission{}).Error
}
