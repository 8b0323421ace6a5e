package services

import (
	"errors"
	"math"
	"strings"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"gorm.io/gorm"
)

type ReelService struct {
	DB       *gorm.DB
	Reels    *repository.ReelRepository
	Activity *ActivityService
}

func NewReelService(db *gorm.DB, reels *repository.ReelRepository, activity *ActivityService) *ReelService {
	return &ReelService{DB: db, Reels: reels, Activity: activity}
}

type CreateReelIn struct {
	VideoURL     string `json:"videoUrl" binding:"required"`
	Caption      string `json:"caption"`
	RestaurantID *uint  `json:"restaurantId"`
	MenuItemID   *uint  `json:"menuItemId"`
}

func (s *ReelService) Create(creatorID uint, in *CreateReelIn) (*entity.Reel, error) {
	reel := &entity.Reel{
		CreatorID:    creatorID,
		VideoURL:     strings.TrimSpace(in.VideoURL),
		Caption:      in.Caption,
		RestaurantID: in.RestaurantID,
		MenuItemID:   in.MenuItemID,
	}
	if err := s.DB.Create(reel).Error; err != nil {
		return nil, err
	}
	return reel, nil
}

// ToggleLike flips the viewer's like and returns the new state with the
// reel's current like count. Only the "like" direction is tracked as
// activity; unliking is not an interaction signal.
func (s *ReelService) ToggleLike(userID, reelID uint) (liked bool, likesCount int64, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Reels.Get(tx, reelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReelNotFound
			}
			return err
		}

		var like entity.Like
		findErr := tx.Where("user_id = ? AND reel_id = ?", userID, reelID).First(&like).Error
		switch {
		case findErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := s.Reels.ApplyInteraction(tx, reelID, entity.ActionLike, -1); err != nil {
				return err
			}
			liked = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if err := tx.Create(&entity.Like{UserID: userID, ReelID: reelID}).Error; err != nil {
				return err
			}
			if err := s.Reels.ApplyInteraction(tx, reelID, entity.ActionLike, 1); err != nil {
				return err
			}
			liked = true
		default:
			return findErr
		}

		reel, err := s.Reels.Get(tx, reelID)
		if err != nil {
			return err
		}
		likesCount = reel.LikesCount
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	if liked {
		id := reelID
		s.Activity.Record(ActivityEvent{UserID: userID, Action: entity.ActionLike, ReelID: &id})
	}
	return liked, likesCount, nil
}

func (s *ReelService) ToggleSave(userID, reelID uint) (saved bool, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Reels.Get(tx, reelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReelNotFound
			}
			return err
		}

		var row entity.SavedReel
		findErr := tx.Where("user_id = ? AND reel_id = ?", userID, reelID).First(&row).Error
		switch {
		case findErr == nil:
			saved = false
			return tx.Delete(&row).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			saved = true
			return tx.Create(&entity.SavedReel{UserID: userID, ReelID: reelID}).Error
		default:
			return findErr
		}
	})
	return saved, err
}

func (s *ReelService) SavedReels(userID uint) ([]entity.Reel, error) {
	var saved []entity.SavedReel
	err := s.DB.Where("user_id = ?", userID).
		Preload("Reel").
		Preload("Reel.Creator").
		Preload("Reel.Restaurant").
		Preload("Reel.MenuItem").
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}

	reels := make([]entity.Reel, 0, len(saved))
	for _, row := range saved {
		if row.Reel.ID != 0 { // skip saves whose reel was deleted
			reels = append(reels, row.Reel)
		}
	}
	return reels, nil
}

func (s *ReelService) AddComment(userID, reelID uint, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentRequired
	}

	comment := &entity.Comment{UserID: userID, ReelID: reelID, Text: text}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Reels.Get(tx, reelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReelNotFound
			}
			return err
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return s.Reels.ApplyInteraction(tx, reelID, entity.ActionComment, 1)
	})
	if err != nil {
		return nil, err
	}

	id := reelID
	s.Activity.Record(ActivityEvent{UserID: userID, Action: entity.ActionComment, ReelID: &id})
	return comment, nil
}

func (s *ReelService) Comments(reelID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := s.DB.Where("reel_id = ?", reelID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

type CreatorAnalytics struct {
	TotalViews     int64         `json:"totalViews"`
	TotalLikes     int64         `json:"totalLikes"`
	TotalComments  int64         `json:"totalComments"`
	TotalOrders    int64         `json:"totalOrders"`
	ConversionRate float64       `json:"conversionRate"` // orders per 100 views
	ReelCount      int           `json:"reelCount"`
	Reels          []entity.Reel `json:"reels"`
}

func (s *ReelService) CreatorAnalytics(creatorID uint) (*CreatorAnalytics, error) {
	reels, err := s.Reels.ByCreator(creatorID)
	if err != nil {
		return nil, err
	}

	out := &CreatorAnalytics{ReelCount: len(reels), Reels: reels}
	for _, r := range reels {
		out.TotalViews += r.Views
		out.TotalLikes += r.LikesCount
		out.TotalComments += r.CommentsCount
		out.TotalOrders += r.OrdersCount
	}
	if out.TotalViews > 0 {
		rate := float64(out.TotalOrders) / float64(out.TotalViews) * 100
		out.ConversionRate = math.Round(rate*100) / 100
	}
	return out, nil
}
