package dao

import (
	"recipebook/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO creates a new UserDAO instance.
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser inserts a new user inside a transaction. A schema rejection
// (duplicate username, NOT NULL) rolls back and surfaces as
// ErrConstraintViolated, leaving no partial row.
func (dao *UserDAO) CreateUser(user *model.User) error {
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	return classify(err)
}

// GetByUsername fetches a user by username.
func (dao *UserDAO) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := dao.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID fetches a user by primary key.
func (dao *UserDAO) GetByID(id uint64) (*model.User, error) {
	var user model.User
	err := dao.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByUsername reports how many rows hold the given username.
func (dao *UserDAO) CountByUsername(username string) (int64, error) {
	var count int64
	err := dao.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}
