package services

import (
	"sort"
	"time"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
)

const (
	recommendationLimit          = 15
	anonymousRecommendationLimit = 10

	cuisineMatchWeight  = 10.0
	engagedEateryWeight = 8.0
	mealCategoryWeight  = 7.0
)

type RecommendationService struct {
	Menu       *repository.MenuRepository
	Activities *repository.ActivityRepository
	Orders     *repository.OrderRepository

	now func() time.Time // replaceable in tests
}

func NewRecommendationService(menu *repository.MenuRepository, activities *repository.ActivityRepository, orders *repository.OrderRepository) *RecommendationService {
	return &RecommendationService{Menu: menu, Activities: activities, Orders: orders, now: time.Now}
}

type RankedMenuItem struct {
	entity.MenuItem
	Score float64 `json:"score"`
}

// MealCategoryForHour buckets the wall-clock hour; the late bucket wraps
// midnight.
func MealCategoryForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return entity.CategoryBreakfast
	case hour >= 11 && hour < 16:
		return entity.CategoryLunch
	case hour >= 16 && hour < 22:
		return entity.CategoryDinner
	default:
		return entity.CategorySnacks
	}
}

// Recommend ranks available menu items for the viewer. Anonymous viewers
// get the first few candidates unscored.
func (s *RecommendationService) Recommend(viewerID uint, lat, lng *float64) ([]RankedMenuItem, error) {
	items, err := s.Menu.Available()
	if err != nil {
		return nil, err
	}

	if viewerID == 0 {
		if len(items) > anonymousRecommendationLimit {
			items = items[:anonymousRecommendationLimit]
		}
		out := make([]RankedMenuItem, 0, len(items))
		for _, it := range items {
			out = append(out, RankedMenuItem{MenuItem: it})
		}
		return out, nil
	}

	// Cuisines the viewer actually ordered from recently.
	preferredCuisines := make(map[string]bool)
	orders, err := s.Orders.RecentWithRestaurant(viewerID, orderScanLimit)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Restaurant.Cuisine != "" {
			preferredCuisines[o.Restaurant.Cuisine] = true
		}
	}

	// Restaurants the viewer engaged with through reels; explicit metadata
	// wins over the reel's own tag.
	engagedRestaurants := make(map[uint]bool)
	acts, err := s.Activities.RecentWithReel(viewerID, activityScanLimit)
	if err != nil {
		return nil, err
	}
	for _, act := range acts {
		if v, ok := act.Metadata["restaurantId"]; ok {
			switch id := v.(type) {
			case float64:
				engagedRestaurants[uint(id)] = true
				continue
			case int:
				engagedRestaurants[uint(id)] = true
				continue
			}
		}
		if act.Reel != nil && act.Reel.RestaurantID != nil {
			engagedRestaurants[*act.Reel.RestaurantID] = true
		}
	}

	currentCategory := MealCategoryForHour(s.now().Hour())

	ranked := make([]RankedMenuItem, 0, len(items))
	for _, it := range items {
		var score float64
		if it.Restaurant.Cuisine != "" && preferredCuisines[it.Restaurant.Cuisine] {
			score += cuisineMatchWeight
		}
		if engagedRestaurants[it.RestaurantID] {
			score += engagedEateryWeight
		}
		if it.Category == currentCategory {
			score += mealCategoryWeight
		}
		if lat != nil && lng != nil {
			score += locationBoost(*lat, *lng, &it.Restaurant)
		}
		ranked = append(ranked, RankedMenuItem{MenuItem: it, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > recommendationLimit {
		ranked = ranked[:recommendationLimit]
	}
	return ranked, nil
}
