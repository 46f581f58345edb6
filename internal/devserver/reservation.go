package devserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
)

const idempotencyTTL = 24 * time.Hour

type CreateReservationParams struct {
	UserID    id.ID
	CourtID   id.ID
	ClubID    id.ID
	StartTime time.Time
	EndTime   time.Time
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID id.ID
	Role   user.Role
}

func (a Actor) canSeeAll() bool {
	return a.Role == user.RoleAdmin || a.Role == user.RoleClubOwner
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, actor Actor, params CreateReservationParams, idempotencyKey string) (*reservation.Reservation, bool, error)
	GetReservation(ctx context.Context, actor Actor, reservationID id.ID) (*reservation.Reservation, error)
	ListReservations(ctx context.Context, actor Actor, q ReservationQuery) []reservation.Reservation
	GetUserReservations(ctx context.Context, userID id.ID) []reservation.Reservation
	UpdateReservation(ctx context.Context, actor Actor, reservationID id.ID, params CreateReservationParams) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, actor Actor, reservationID id.ID) error
}

type reservationUseCaseImpl struct {
	store  *Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationUseCase(store *Store, clk clock.Clock, logger *slog.Logger) ReservationUseCase {
	return &reservationUseCaseImpl{store: store, clock: clk, logger: logger}
}

// CreateReservation reports true when the result replays an earlier request
// with the same idempotency key.
func (u *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	actor Actor,
	params CreateReservationParams,
	idempotencyKey string,
) (*reservation.Reservation, bool, error) {
	if params.UserID.IsZero() || !actor.canSeeAll() {
		params.UserID = actor.UserID
	}
	r, err := u.buildReservation(params)
	if err != nil {
		return nil, false, err
	}

	created, replayed, err := u.store.InsertReservation(r, idempotencyKey, requestHash(params), u.clock.Now(), idempotencyTTL)
	if err != nil {
		return nil, false, err
	}

	if !replayed {
		u.logger.InfoContext(ctx, "reservation created",
			slog.String("reservation_id", created.ID.String()),
			slog.String("court_id", created.CourtID.String()),
			slog.String("user_id", created.UserID.String()))
	}
	return &created, replayed, nil
}

// buildReservation checks the court and club and stamps server-owned fields.
// The club always comes from the court, whatever the client sent.
func (u *reservationUseCaseImpl) buildReservation(params CreateReservationParams) (reservation.Reservation, error) {
	if params.StartTime.IsZero() || !params.EndTime.After(params.StartTime) {
		return reservation.Reservation{}, reservation.ErrInvalidTimeSlot
	}
	if !params.StartTime.After(u.clock.Now()) {
		return reservation.Reservation{}, errs.Wrap(reservation.ErrInvalidTimeSlot, "start time is in the past")
	}

	c, err := u.store.FindCourt(params.CourtID)
	if err != nil {
		return reservation.Reservation{}, err
	}
	if !c.IsActive {
		return reservation.Reservation{}, ErrCourtInactive
	}
	if !c.HasClub() {
		return reservation.Reservation{}, reservation.ErrMissingClub
	}
	club, err := u.store.FindClub(c.ClubID)
	if err != nil {
		return reservation.Reservation{}, err
	}
	if !withinHours(club.OpeningTime, club.ClosingTime, params.StartTime, params.EndTime) {
		return reservation.Reservation{}, ErrClubClosed
	}

	return reservation.Reservation{
		UserID:        params.UserID,
		CourtID:       c.ID,
		ClubID:        c.ClubID,
		StartTime:     clock.NewDateTime(params.StartTime),
		EndTime:       clock.NewDateTime(params.EndTime),
		Status:        reservation.StatusPending,
		PaymentStatus: reservation.PaymentPending,
		CreatedAt:     clock.NewDateTime(u.clock.Now()),
	}, nil
}

func withinHours(opening, closing reservation.TimeOfDay, start, end time.Time) bool {
	if opening.IsZero() || closing.IsZero() {
		opening, closing = defaultOpening, defaultClosing
	}
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return false
	}
	s, e := reservation.TimeOfDayOf(start), reservation.TimeOfDayOf(end)
	return !s.Before(opening) && !e.After(closing)
}

func requestHash(params CreateReservationParams) string {
	b, _ := json.Marshal(struct {
		CourtID id.ID     `json:"courtId"`
		Start   time.Time `json:"start"`
		End     time.Time `json:"end"`
	}{params.CourtID, params.StartTime.UTC(), params.EndTime.UTC()})
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (u *reservationUseCaseImpl) GetReservation(_ context.Context, actor Actor, reservationID id.ID) (*reservation.Reservation, error) {
	r, err := u.store.FindReservation(reservationID)
	if err != nil {
		return nil, err
	}
	if r.UserID != actor.UserID && !actor.canSeeAll() {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (u *reservationUseCaseImpl) ListReservations(_ context.Context, actor Actor, q ReservationQuery) []reservation.Reservation {
	if !actor.canSeeAll() {
		q.UserID = actor.UserID
	}
	return u.store.ListReservations(q)
}

func (u *reservationUseCaseImpl) GetUserReservations(_ context.Context, userID id.ID) []reservation.Reservation {
	return u.store.ListReservations(ReservationQuery{UserID: userID})
}

func (u *reservationUseCaseImpl) UpdateReservation(ctx context.Context, actor Actor, reservationID id.ID, params CreateReservationParams) (*reservation.Reservation, error) {
	current, err := u.GetReservation(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}
	if current.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	if params.CourtID.IsZero() {
		params.CourtID = current.CourtID
	}
	params.UserID = current.UserID

	next, err := u.buildReservation(params)
	if err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.Status = current.Status
	next.PaymentStatus = current.PaymentStatus
	next.CreatedAt = current.CreatedAt

	updated, err := u.store.UpdateReservation(next)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *reservationUseCaseImpl) CancelReservation(ctx context.Context, actor Actor, reservationID id.ID) error {
	current, err := u.GetReservation(ctx, actor, reservationID)
	if err != nil {
		return err
	}
	if current.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if !current.IsUpcoming(u.clock.Now()) {
		return errs.Wrap(reservation.ErrInvalidTimeSlot, "reservation already started")
	}

	cancelled := current.Cancelled()
	if cancelled.PaymentStatus == reservation.PaymentPending {
		cancelled.PaymentStatus = reservation.PaymentCancelled
	}
	if _, err := u.store.UpdateReservation(cancelled); err != nil {
		return err
	}
	u.logger.InfoContext(ctx, "reservation cancelled", slog.String("reservation_id", reservationID.String()))
	return nil
}
