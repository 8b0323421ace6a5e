package services

import (
	"log"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"gorm.io/gorm"
)

// ActivityEvent is one viewer interaction headed for the activity log.
type ActivityEvent struct {
	UserID   uint
	Action   string
	ReelID   *uint
	OrderID  *uint
	Metadata map[string]any
}

// ActivityService is the fire-and-forget ingestion facade. Record never
// blocks the caller on I/O and never surfaces persistence failures: the
// activity log is best-effort telemetry, so a like or checkout must succeed
// even when its activity write fails.
type ActivityService struct {
	DB    *gorm.DB
	Repo  *repository.ActivityRepository
	Reels *repository.ReelRepository

	dedup *viewDeduper

	// dispatch runs the persistence task. The default detaches it from the
	// request (no backpressure, no retry, log-and-drop on failure); tests
	// swap in a synchronous variant to assert on emitted records.
	dispatch func(task func())
}

func NewActivityService(db *gorm.DB, repo *repository.ActivityRepository, reels *repository.ReelRepository) *ActivityService {
	return &ActivityService{
		DB:       db,
		Repo:     repo,
		Reels:    reels,
		dedup:    newViewDeduper(DedupWindow),
		dispatch: func(task func()) { go task() },
	}
}

// Record ingests one event. Views of a reel are deduplicated before
// dispatch; everything else is persisted unconditionally.
func (s *ActivityService) Record(ev ActivityEvent) {
	if ev.UserID == 0 || !entity.ValidAction(ev.Action) {
		return
	}

	if ev.Action == entity.ActionView && ev.ReelID != nil {
		if !s.dedup.Register(ev.UserID, *ev.ReelID) {
			return
		}
	}

	s.dispatch(func() {
		rec := &entity.UserActivity{
			UserID:   ev.UserID,
			Action:   ev.Action,
			ReelID:   ev.ReelID,
			OrderID:  ev.OrderID,
			Metadata: ev.Metadata,
		}
		if err := s.Repo.Create(rec); err != nil {
			log.Printf("activity: record %s failed: %v", ev.Action, err)
			return
		}

		// Derived counters: a view bumps the reel's view counter, an
		// attributed order bumps its order counter.
		if ev.ReelID == nil {
			return
		}
		switch ev.Action {
		case entity.ActionView, entity.ActionOrder:
			if err := s.Reels.ApplyInteraction(s.DB, *ev.ReelID, ev.Action, 1); err != nil {
				log.Printf("activity: counter update for reel %d failed: %v", *ev.ReelID, err)
			}
		}
	})
}

// BulkRecordViews logs a view per reel independently; partial success is
// fine, there is no batching guarantee.
func (s *ActivityService) BulkRecordViews(reelIDs []uint, userID uint) {
	if len(reelIDs) == 0 || userID == 0 {
		return
	}
	for _, id := range reelIDs {
		reelID := id
		s.Record(ActivityEvent{UserID: userID, Action: entity.ActionView, ReelID: &reelID})
	}
}
