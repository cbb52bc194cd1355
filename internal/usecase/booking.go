package usecase

import (
	"context"
	"log/slog"
	"time"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/pkg/errs"
)

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

type CreateBookingParams struct {
	UserID   int64
	RoomID   int64
	RoomName string
	Date     string
	Preview  bool
}

type BookingResult struct {
	// zero for previews
	BookingID int64
	Quote     booking.Quote
	Preview   bool
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingResult, error)
	ListUserBookings(ctx context.Context, userID int64) ([]*booking.Booking, error)
	// DeleteBooking removes a booking. A non-zero requesterID must own it.
	DeleteBooking(ctx context.Context, id, requesterID int64) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	rooms      RoomCatalog
	weather    WeatherProvider
	repo       BookingRepository
	publisher  EventPublisher
	calculator booking.SurchargeCalculator
	clock      clock.Clock
	location   *time.Location
	logger     *slog.Logger
}

func NewBookingUseCase(
	rooms RoomCatalog,
	weather WeatherProvider,
	repo BookingRepository,
	publisher EventPublisher,
	calculator booking.SurchargeCalculator,
	clk clock.Clock,
	location *time.Location,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCaseImpl{
		rooms:      rooms,
		weather:    weather,
		repo:       repo,
		publisher:  publisher,
		calculator: calculator,
		clock:      clk,
		location:   location,
		logger:     logger,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingResult, error) {
	date, err := u.validate(params)
	if err != nil {
		return nil, err
	}

	room, err := u.rooms.GetRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	temperature := u.resolveTemperature(ctx, room.Location, date)
	quote := booking.NewQuote(room, date, temperature, u.calculator)

	if params.Preview {
		return &BookingResult{Quote: quote, Preview: true}, nil
	}

	entity, err := booking.FromQuote(params.UserID, params.RoomName, quote)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingFields)
	}

	created, err := u.persist(ctx, entity)
	if err != nil {
		return nil, err
	}

	u.publish(ctx, EventBookingCreated, created)

	return &BookingResult{BookingID: created.ID(), Quote: quote}, nil
}

func (u *bookingUseCaseImpl) ListUserBookings(ctx context.Context, userID int64) ([]*booking.Booking, error) {
	bookings, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookings, nil
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id, requesterID int64) (*booking.Booking, error) {
	if requesterID != 0 {
		if err := u.checkOwner(ctx, id, requesterID); err != nil {
			return nil, err
		}
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publish(ctx, EventBookingDeleted, deleted)

	return deleted, nil
}

func (u *bookingUseCaseImpl) checkOwner(ctx context.Context, id, requesterID int64) error {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.UserID() != requesterID {
		return ErrForbidden
	}
	return nil
}

func (u *bookingUseCaseImpl) validate(params CreateBookingParams) (booking.Date, error) {
	if params.UserID == 0 || params.RoomID == 0 || params.Date == "" {
		return booking.Date{}, ErrMissingFields
	}
	if params.UserID < 0 || params.RoomID < 0 {
		return booking.Date{}, errs.Mark(errs.New("user_id and room_id must be positive"), ErrMissingFields)
	}

	date, err := booking.ParseDate(params.Date)
	if err != nil {
		return booking.Date{}, errs.Mark(errs.Newf("Invalid date %q, expected YYYY-MM-DD", params.Date), ErrInvalidDate)
	}

	today := booking.DateOf(clock.Today(u.clock, u.location))
	if date.Before(today) {
		return booking.Date{}, errs.Mark(
			errs.Newf("Cannot book a date in the past (today is %s, requested %s)", today, date),
			ErrPastDate,
		)
	}

	return date, nil
}

// resolveTemperature never fails; weather is advisory for pricing.
func (u *bookingUseCaseImpl) resolveTemperature(ctx context.Context, location string, date booking.Date) float64 {
	temperature, err := u.weather.Temperature(ctx, location, date)
	if err != nil {
		u.logger.WarnContext(ctx, "weather lookup failed, using fallback temperature",
			slog.String("location", location),
			slog.String("date", date.String()),
			slog.Float64("fallback", booking.FallbackTemperature),
			slog.String("error", err.Error()),
		)
		return booking.FallbackTemperature
	}
	return temperature
}

// persist checks for an existing booking first, but the (room_id, date) unique
// constraint is the real guard against concurrent inserts.
func (u *bookingUseCaseImpl) persist(ctx context.Context, entity *booking.Booking) (*booking.Booking, error) {
	exists, err := u.repo.ExistsForRoomOnDate(ctx, entity.RoomID(), entity.Date())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrBookingConflict
	}

	created, err := u.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *bookingUseCaseImpl) publish(ctx context.Context, eventType string, b *booking.Booking) {
	event := newBookingEvent(eventType, b, u.clock.Now())
	if err := u.publisher.Publish(ctx, eventType, event); err != nil {
		u.logger.WarnContext(ctx, "failed to publish booking event",
			slog.String("type", eventType),
			slog.Int64("booking_id", b.ID()),
			slog.String("error", err.Error()),
		)
	}
}
