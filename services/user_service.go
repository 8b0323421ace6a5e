package services

import (
	"errors"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"gorm.io/gorm"
)

const activityHistoryLimit = 50

type UserService struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Reels    *repository.ReelRepository
	Orders   *repository.OrderRepository
	Activity *repository.ActivityRepository
}

func NewUserService(db *gorm.DB, users *repository.UserRepository, reels *repository.ReelRepository, orders *repository.OrderRepository, activities *repository.ActivityRepository) *UserService {
	return &UserService{DB: db, Users: users, Reels: reels, Orders: orders, Activity: activities}
}

// Activities returns the caller's interaction history, newest first.
func (s *UserService) Activities(userID uint) ([]entity.UserActivity, error) {
	return s.Activity.ListForUser(userID, activityHistoryLimit)
}

func (s *UserService) ToggleFollow(userID, targetID uint) (following bool, err error) {
	if userID == targetID {
		return false, ErrSelfFollow
	}
	if _, err := s.Users.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var row entity.Follow
		findErr := tx.Where("follower_id = ? AND following_id = ?", userID, targetID).First(&row).Error
		switch {
		case findErr == nil:
			following = false
			return tx.Delete(&row).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			following = true
			return tx.Create(&entity.Follow{FollowerID: userID, FollowingID: targetID}).Error
		default:
			return findErr
		}
	})
	return following, err
}

// CommissionStats aggregates a creator's attributed order lines by month
// ("2026-01"), newest month first.
type CommissionMonth struct {
	Month           string `json:"month"`
	TotalCommission int64  `json:"totalCommission"`
	SalesCount      int    `json:"salesCount"`
	TotalSalesValue int64  `json:"totalSalesValue"`
}

func (s *UserService) CommissionStats(creatorID uint) ([]CommissionMonth, error) {
	lines, err := s.Orders.CommissionLinesForCreator(creatorID)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*CommissionMonth)
	months := make([]string, 0)
	for _, l := range lines {
		key := l.CreatedAt.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &CommissionMonth{Month: key}
			byMonth[key] = m
			months = append(months, key) // lines arrive newest first
		}
		m.TotalCommission += l.Amount
		m.SalesCount++
		m.TotalSalesValue += l.LineTotal
	}

	out := make([]CommissionMonth, 0, len(months))
	for _, key := range months {
		out = append(out, *byMonth[key])
	}
	return out, nil
}

type ProfileStats struct {
	TotalViews     int64 `json:"totalViews"`
	TotalLikes     int64 `json:"totalLikes"`
	ReelsCount     int   `json:"reelsCount"`
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}

type Profile struct {
	User        *entity.User  `json:"user"`
	Stats       ProfileStats  `json:"stats"`
	IsFollowing bool          `json:"isFollowing"`
	TopReels    []entity.Reel `json:"topReels"`
}

// Profile is the public creator page: reel stats, follow counts, and
// whether the viewer already follows them.
func (s *UserService) Profile(targetID, viewerID uint) (*Profile, error) {
	user, err := s.Users.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	reels, err := s.Reels.ByCreator(targetID)
	if err != nil {
		return nil, err
	}

	p := &Profile{User: user}
	for _, r := range reels {
		p.Stats.TotalViews += r.Views
		p.Stats.TotalLikes += r.LikesCount
	}
	p.Stats.ReelsCount = len(reels)

	p.Stats.FollowersCount, p.Stats.FollowingCount, err = s.Users.FollowerCounts(targetID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		var n int64
		if err := s.DB.Model(&entity.Follow{}).
			Where("follower_id = ? AND following_id = ?", viewerID, targetID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		p.IsFollowing = n > 0
	}

	if len(reels) > 3 {
		reels = reels[:3]
	}
	p.TopReels = reels
	return p, nil
}
