package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/event/dto"
	"github.com/somewherelostt/KaizenX/internal/modules/event/model"
	"github.com/somewherelostt/KaizenX/pkg/validation"
)

var ErrForbidden = errors.New("not the event owner")

type EventUsecase struct {
	repo *repository.EventRepository
}

func NewEventUsecase(repo *repository.EventRepository) *EventUsecase {
	return &EventUsecase{repo: repo}
}

func (u *EventUsecase) Create(ctx context.Context, userID string, in dto.CreateEventInput) (*model.Event, error) {
	if err := validation.ValidateCategory(in.Category); err != nil {
		return nil, err
	}
	price, err := validation.ValidatePrice(in.Price)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Subtitle:         in.Subtitle,
		Description:      in.Description,
		Date:             in.Date,
		Location:         in.Location,
		Price:            price,
		Seats:            in.Seats,
		Category:         in.Category,
		ImageURL:         in.ImageURL,
		CreatedBy:        userID,
		OrganizerAddress: in.OrganizerAddress,
	}
	if err := u.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *EventUsecase) List(ctx context.Context) ([]model.Event, error) {
	return u.repo.List(ctx)
}

func (u *EventUsecase) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return u.repo.GetByID(ctx, id)
}

// Update applies the non-nil fields. Only the creator may modify an event.
func (u *EventUsecase) Update(ctx context.Context, userID, id string, in dto.UpdateEventInput) (*model.Event, error) {
	event, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != userID {
		return nil, ErrForbidden
	}

	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Subtitle != nil {
		event.Subtitle = *in.Subtitle
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Date != nil {
		event.Date = *in.Date
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.Price != nil {
		price, err := validation.ValidatePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		event.Price = price
	}
	if in.Seats != nil {
		event.Seats = *in.Seats
	}
	if in.Category != nil {
		if err := validation.ValidateCategory(*in.Category); err != nil {
			return nil, err
		}
		event.Category = *in.Category
	}
	if in.ImageURL != nil {
		event.ImageURL = *in.ImageURL
	}
	if in.OrganizerAddress != nil {
		event.OrganizerAddress = *in.OrganizerAddress
	}

	if err := u.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *EventUsecase) Delete(ctx context.Context, userID, id string) error {
	event, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.CreatedBy != userID {
		return ErrForbidden
	}
	return u.repo.Delete(ctx, id)
}

// SetImage stores the static path produced by the upload handler.
func (u *EventUsecase) SetImage(ctx context.Context, userID, id, imageURL string) (*model.Event, error) {
	return u.Update(ctx, userID, id, dto.UpdateEventInput{ImageURL: &imageURL})
}
