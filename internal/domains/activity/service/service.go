package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/internal/domains/activity/model"
	"catering/internal/domains/activity/model/dto"
	"catering/internal/domains/activity/repository"
	"catering/internal/domains/notification"
	"catering/shared"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

var errAdminOnly = failure.Forbidden("only admins can view booking activity")

type Activity interface {
	Record(ctx context.Context, id string, envelope notification.Envelope) error
	ListForBooking(ctx context.Context, principal gDto.Principal, bookingID string) ([]dto.ActivityResponse, error)
}

type serviceImpl struct {
	repo repository.Activity
	otel otel.Otel
}

func New(repo repository.Activity, otel otel.Otel) Activity {
	return &serviceImpl{repo: repo, otel: otel}
}

// Record stores a booking event once. Redelivered records with a known id are skipped,
// and events that are not about bookings are ignored.
func (s *serviceImpl) Record(ctx context.Context, id string, envelope notification.Envelope) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !dto.Tracked(envelope.Event) {
		log.Debug().Str("event", envelope.Event).Msg("event is not part of booking activity")

		return nil
	}

	activity, err := dto.FromEnvelope(id, envelope)
	if err != nil {
		return err //nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("activity_id", id).Msg("failed to check booking activity")

		return fmt.Errorf("failed to check booking activity: %w", err)
	}

	if exists {
		log.Debug().Str("activity_id", id).Msg("booking activity already recorded")

		return nil
	}

	if err = s.repo.Insert(ctx, activity); err != nil {
		if shared.IsUniqueViolation(err) {
			return nil
		}

		log.Error().Err(err).Str("booking_id", activity.BookingID).Msg("failed to record booking activity")

		return fmt.Errorf("failed to record booking activity: %w", err)
	}

	log.Info().Str("booking_id", activity.BookingID).Str("event", activity.Event).Msg("booking activity recorded")

	return nil
}

func (s *serviceImpl) ListForBooking(ctx context.Context, principal gDto.Principal, bookingID string) (res []dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.ListForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Admin) {
		return nil, errAdminOnly
	}

	activities, err := s.repo.GetAll(ctx, repository.OldestFirst(), repository.FilterByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking activity")

		return nil, fmt.Errorf("failed to get booking activity: %w", err)
	}

	return dto.FromModels(activities), nil
}
