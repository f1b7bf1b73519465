package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/modules/event/model"
)

var ErrNotFound = errors.New("record not found")

type EventRepository struct {
	dbWrite *gorm.DB
	dbRead  *gorm.DB
}

func NewEventRepository(dbWrite *gorm.DB, dbRead *gorm.DB) *EventRepository {
	return &EventRepository{dbWrite: dbWrite, dbRead: dbRead}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.dbWrite.WithContext(ctx).Create(event).Error
}

// List returns events ordered soonest-first, the shape the catalog wants.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.dbRead.WithContext(ctx).Order("date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.dbRead.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	res := r.dbWrite.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":             event.Title,
			"subtitle":          event.Subtitle,
			"description":       event.Description,
			"date":              event.Date,
			"location":          event.Location,
			"price":             event.Price,
			"seats":             event.Seats,
			"category":          event.Category,
			"image_url":         event.ImageURL,
			"organizer_address": event.OrganizerAddress,
			"updated_at":        gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res := r.dbWrite.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementSeatsTaken bumps the taken counter without exceeding capacity.
func (r *EventRepository) IncrementSeatsTaken(ctx context.Context, id string) error {
	const sql = `
		UPDATE events
		SET seats_taken = seats_taken + 1,
		    updated_at  = NOW()
		WHERE id = ? AND (seats = 0 OR seats_taken < seats)
	`
	return r.dbWrite.WithContext(ctx).Exec(sql, id).Error
}
