package services

import (
	"errors"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"gorm.io/gorm"
)

// RestaurantService is the minimal owner surface the platform needs to have
// content to rank; the full management workflow lives elsewhere.
type RestaurantService struct {
	DB   *gorm.DB
	Menu *repository.MenuRepository
}

func NewRestaurantService(db *gorm.DB, menu *repository.MenuRepository) *RestaurantService {
	return &RestaurantService{DB: db, Menu: menu}
}

type CreateRestaurantIn struct {
	Name        string  `json:"name" binding:"required"`
	Cuisine     string  `json:"cuisine"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Image       string  `json:"image"`
}

func (s *RestaurantService) Create(ownerID uint, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	r := &entity.Restaurant{
		Name:        in.Name,
		Cuisine:     in.Cuisine,
		Description: in.Description,
		Address:     in.Address,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Image:       in.Image,
		OwnerID:     ownerID,
	}
	if err := s.DB.Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := s.DB.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

type CreateMenuItemIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Price        int64  `json:"price" binding:"required,min=1"`
	Image        string `json:"image"`
}

// CreateMenuItem requires the caller to own the restaurant (admins bypass).
func (s *RestaurantService) CreateMenuItem(userID uint, role string, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	var r entity.Restaurant
	if err := s.DB.First(&r, in.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if r.OwnerID != userID && role != "admin" {
		return nil, ErrForbidden
	}

	m := &entity.MenuItem{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
		IsAvailable:  true,
	}
	if err := s.DB.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *RestaurantService) MenuItems(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Menu.ListForRestaurant(restaurantID)
}
