package repository

import (
	"github.com/SHIVA769/snapbites/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FollowingIDs returns the creators the user follows.
func (r *UserRepository) FollowingIDs(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := r.DB.Model(&entity.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *UserRepository) FollowerCounts(userID uint) (followers int64, following int64, err error) {
	if err = r.DB.Model(&entity.Follow{}).Where("following_id = ?", userID).Count(&followers).Error; err != nil {
		return
	}
	err = r.DB.Model(&entity.Follow{}).Where("follower_id = ?", userID).Count(&following).Error
	return
}
