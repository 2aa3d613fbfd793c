package repository

import (
	"context"
	"eventlist-backend/cmd/eventlist/model"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

// ListEvents returns all events in id order. The slice is never nil so
// an empty table still renders as a JSON array.
func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {

	events := []model.Event{}

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Order("id").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) GetEvent(ctx context.Context, id int) (*model.Event, error) {

	var event model.Event

	result := r.db.
		WithContext(ctx).
		First(&event, id)

	if result.Error != nil {
		return nil, result.Error
	}

	return &event, nil
}

// CreateEvent inserts the event and backfills the database-assigned id.
func (r *EventRepo) CreateEvent(ctx context.Context, event *model.Event) error {

	result := r.db.
		WithContext(ctx).
		Create(event)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// UpdateEvent overwrites every mutable column of the stored row,
// zero values included.
func (r *EventRepo) UpdateEvent(ctx context.Context, event *model.Event) error {

	result := r.db.
		WithContext(ctx).
		Save(event)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *EventRepo) DeleteEvent(ctx context.Context, id int) error {

	result := r.db.
		WithContext(ctx).
		Delete(&model.Event{}, id)

	if result.Error != nil {
		return result.Error
	}

	return nil
}
