package services

import (
	"math"
	"sort"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"gorm.io/gorm"
)

// Feed filter modes.
const (
	FilterLatest    = "latest"
	FilterTrending  = "trending"
	FilterFollowing = "following"
	FilterSmart     = "smart"
)

// Scoring weights for the smart feed. A single affinity signal is capped so
// it cannot dominate engagement.
const (
	likesWeight    = 2
	commentsWeight = 3
	ordersWeight   = 5

	creatorAffinityCap   = 5.0
	cuisineAffinityBoost = 4.0

	activityScanLimit = 50
	orderScanLimit    = 20
)

type FeedService struct {
	DB         *gorm.DB
	Reels      *repository.ReelRepository
	Activities *repository.ActivityRepository
	Orders     *repository.OrderRepository
	Users      *repository.UserRepository
	Recorder   *ActivityService
}

func NewFeedService(
	db *gorm.DB,
	reels *repository.ReelRepository,
	activities *repository.ActivityRepository,
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	recorder *ActivityService,
) *FeedService {
	return &FeedService{DB: db, Reels: reels, Activities: activities, Orders: orders, Users: users, Recorder: recorder}
}

type FeedQuery struct {
	Filter       string
	RestaurantID uint
	MenuItemID   uint
	Search       string
	Lat          *float64
	Lng          *float64
}

type RankedReel struct {
	entity.Reel
	Score float64 `json:"score"`
}

// locationBoost decays with squared flat-plane degree distance. Deliberately
// not great-circle: candidates are city-scale close and only the ordering
// matters. A restaurant at the viewer's exact coordinates scores 10.
func locationBoost(lat, lng float64, r *entity.Restaurant) float64 {
	dLat := r.Lat - lat
	dLng := r.Lng - lng
	distSq := dLat*dLat + dLng*dLng
	return 10 / (distSq*1000 + 1)
}

// List retrieves and orders the viewer's feed. Every reel in the returned
// page is logged as a view for authenticated viewers, fire-and-forget.
func (s *FeedService) List(viewerID uint, q FeedQuery) ([]RankedReel, error) {
	f := repository.ReelFilter{
		RestaurantID: q.RestaurantID,
		MenuItemID:   q.MenuItemID,
		Search:       q.Search,
	}

	switch q.Filter {
	case FilterTrending:
		// likes dominate, comments break ties
		f.OrderBy = "likes_count DESC, comments_count DESC, id DESC"
	case FilterFollowing:
		if viewerID == 0 {
			return nil, ErrAuthRequired
		}
		ids, err := s.Users.FollowingIDs(viewerID)
		if err != nil {
			return nil, err
		}
		f.CreatorIDs = ids
	}

	reels, err := s.Reels.Search(f)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedReel, 0, len(reels))
	for _, r := range reels {
		ranked = append(ranked, RankedReel{Reel: r})
	}

	if q.Filter == FilterSmart {
		if err := s.rankSmart(viewerID, q, ranked); err != nil {
			return nil, err
		}
	}

	if viewerID != 0 {
		ids := make([]uint, 0, len(ranked))
		for _, r := range ranked {
			ids = append(ids, r.ID)
		}
		s.Recorder.BulkRecordViews(ids, viewerID)
	}
	return ranked, nil
}

// rankSmart scores candidates in place and stable-sorts them descending, so
// retrieval order (newest first) breaks ties. Anonymous viewers get only
// the engagement and location terms.
func (s *FeedService) rankSmart(viewerID uint, q FeedQuery, ranked []RankedReel) error {
	creatorWeight := make(map[uint]float64)
	cuisineWeight := make(map[string]float64)

	if viewerID != 0 {
		// Creator affinity from the last 50 activities: a like on a
		// creator's reel weighs 3, a view 1.
		acts, err := s.Activities.RecentWithReel(viewerID, activityScanLimit)
		if err != nil {
			return err
		}
		for _, act := range acts {
			if act.Reel == nil {
				continue
			}
			switch act.Action {
			case entity.ActionLike:
				creatorWeight[act.Reel.CreatorID] += 3
			case entity.ActionView:
				creatorWeight[act.Reel.CreatorID] += 1
			}
		}

		// Cuisine affinity from the last 20 orders; repeat orders of the
		// same cuisine accumulate.
		orders, err := s.Orders.RecentWithRestaurant(viewerID, orderScanLimit)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.Restaurant.Cuisine != "" {
				cuisineWeight[o.Restaurant.Cuisine] += 5
			}
		}
	}

	for i := range ranked {
		r := &ranked[i]

		var locBoost, persBoost float64
		if q.Lat != nil && q.Lng != nil && r.Restaurant != nil {
			locBoost = locationBoost(*q.Lat, *q.Lng, r.Restaurant)
		}
		if viewerID != 0 {
			if w, ok := creatorWeight[r.CreatorID]; ok {
				persBoost += math.Min(creatorAffinityCap, w)
			}
			if r.Restaurant != nil && r.Restaurant.Cuisine != "" {
				if _, ok := cuisineWeight[r.Restaurant.Cuisine]; ok {
					persBoost += cuisineAffinityBoost
				}
			}
		}

		r.Score = float64(r.LikesCount)*likesWeight +
			float64(r.CommentsCount)*commentsWeight +
			float64(r.OrdersCount)*ordersWeight +
			locBoost + persBoost
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return nil
}
