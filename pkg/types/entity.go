package types

import (
	"github.com/mesh-intelligence/scaffold/pkg/defaults"
)

// Entity is the scaffolded base embedded by value in every entity type.
// It carries the lifecycle fields and the activity log; the lifecycle
// timestamps are UTC unix seconds.
type Entity struct {
	// ID is a UUID v4, generated on creation unless the caller supplies one.
	ID string `json:"id"`

	// CreatedDTM is the timestamp when the entity was created.
	CreatedDTM int64 `json:"created_dtm"`

	// ModifiedDTM is the timestamp when the entity was last modified.
	// Always greater than or equal to CreatedDTM.
	ModifiedDTM int64 `json:"modified_dtm"`

	// InactiveDTM is the timestamp when the entity becomes inactive.
	// Defaults to creation time plus 90 days.
	InactiveDTM int64 `json:"inactive_dtm"`

	// ExpiredDTM is the timestamp when the entity expires.
	// Defaults to creation time plus 3 years.
	ExpiredDTM int64 `json:"expired_dtm"`

	// Activity is the append-only log of timestamped actions.
	Activity []ActivityItem `json:"activity"`
}

// NewEntity returns an Entity populated with the catalog defaults.
func NewEntity() Entity {
	now := defaults.Now()
	return Entity{
		ID:          defaults.NewID(),
		CreatedDTM:  now,
		ModifiedDTM: now,
		InactiveDTM: defaults.AddDays(now, 90),
		ExpiredDTM:  defaults.AddYears(now, 3),
		Activity:    []ActivityItem{},
	}
}

// ActivityItem is one timestamped entry in an entity's activity log.
// Items are immutable after creation; entities append new items and never
// mutate existing ones.
type ActivityItem struct {
	CreatedDTM  int64  `json:"created_dtm"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// NewActivityItem returns an ActivityItem stamped with the current time.
func NewActivityItem(action, description string) ActivityItem {
	return ActivityItem{
		CreatedDTM:  defaults.Now(),
		Action:      action,
		Description: description,
	}
}

// LogActivity appends a timestamped action to the activity log.
func (e *Entity) LogActivity(action, description string) {
	e.Activity = append(e.Activity, NewActivityItem(action, description))
}

// GetActivity returns the activity items with the given action, in log
// order. Returns an empty slice (not nil) when none match.
func (e *Entity) GetActivity(action string) []ActivityItem {
	items := make([]ActivityItem, 0)
	for _, item := range e.Activity {
		if item.Action == action {
			items = append(items, item)
		}
	}
	return items
}
