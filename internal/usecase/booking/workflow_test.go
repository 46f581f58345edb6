//go:build unit

package booking_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
	"courtbook/internal/pkg/logger"
	"courtbook/internal/usecase/booking"
	"courtbook/tests/common/builder"
	bookingmock "courtbook/tests/mock/booking"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)

func slots(t *testing.T, raw ...string) reservation.SlotSet {
	t.Helper()
	s, err := reservation.NewSlotSet(raw)
	if err != nil {
		t.Fatalf("slot set: %v", err)
	}
	return s
}

type WorkflowTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	courts       *bookingmock.MockCourtAPI
	reservations *bookingmock.MockReservationAPI
	session      *bookingmock.MockSessionReader
	clock        *clock.MockClock
	workflow     *booking.Workflow
	court        *court.Court
	user         *user.User
}

func (s *WorkflowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.courts = bookingmock.NewMockCourtAPI(s.mockCtrl)
	s.reservations = bookingmock.NewMockReservationAPI(s.mockCtrl)
	s.session = bookingmock.NewMockSessionReader(s.mockCtrl)
	s.clock = clock.NewMockClock(now)
	opts := booking.Options{
		LatestEnd:       reservation.MustTimeOfDay("22:30"),
		DefaultDuration: time.Hour,
	}
	s.workflow = booking.NewWorkflow(s.courts, s.reservations, s.session, s.clock, opts, logger.Discard())
	s.court = builder.NewCourtBuilder().Build()
	s.user = builder.NewUserBuilder().Build()
}

func (s *WorkflowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

// ready loads the court with the given slots for tomorrow.
func (s *WorkflowTestSuite) ready(raw ...string) {
	s.courts.EXPECT().Get(gomock.Any(), s.court.ID).Return(s.court, nil)
	s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).Return(slots(s.T(), raw...), nil)
	s.Require().NoError(s.workflow.LoadCourt(context.Background(), s.court.ID, booking.Preset{}))
	s.Require().Equal(booking.PhaseReady, s.workflow.Phase())
}

func (s *WorkflowTestSuite) assertField(err error, field string) {
	s.T().Helper()
	e, ok := errs.As(err)
	s.Require().True(ok, "expected tagged error, got %v", err)
	s.Equal(errs.KindValidation, e.Kind)
	s.Equal(field, e.Field)
}

func (s *WorkflowTestSuite) TestLoadCourt() {
	s.Run("success: defaults to tomorrow", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")

		s.Equal("2025-03-02", s.workflow.Date().String())
		s.Equal([]string{"09:00", "10:00"}, s.workflow.Slots().Strings())
		s.Equal(booking.AvailabilityOpen, s.workflow.Availability())
		s.True(s.workflow.Start().IsZero())
	})

	s.Run("success: preset date and start", func() {
		s.SetupTest()
		s.courts.EXPECT().Get(gomock.Any(), s.court.ID).Return(s.court, nil)
		s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ id.ID, d reservation.Date) (reservation.SlotSet, error) {
				s.Equal("2025-03-05", d.String())
				return slots(s.T(), "09:00", "10:00"), nil
			})

		err := s.workflow.LoadCourt(context.Background(), s.court.ID, booking.Preset{
			Date:  reservation.MustDate("2025-03-05"),
			Start: reservation.MustTimeOfDay("10:00"),
		})

		s.Require().NoError(err)
		s.Equal("10:00", s.workflow.Start().String())
		s.Equal("11:00", s.workflow.End().String())
	})

	s.Run("error: court without club never becomes ready", func() {
		s.SetupTest()
		orphan := builder.NewCourtBuilder().WithoutClub().Build()
		s.courts.EXPECT().Get(gomock.Any(), orphan.ID).Return(orphan, nil)

		err := s.workflow.LoadCourt(context.Background(), orphan.ID, booking.Preset{})

		s.ErrorIs(err, booking.ErrCourtWithoutClub)
		s.Equal(booking.PhaseFailed, s.workflow.Phase())
		s.ErrorIs(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")), booking.ErrNotReady)
		_, err = s.workflow.Submit(context.Background())
		s.ErrorIs(err, booking.ErrNotReady)
	})

	s.Run("error: court fetch fails", func() {
		s.SetupTest()
		s.courts.EXPECT().Get(gomock.Any(), s.court.ID).Return(nil, errs.Server(http.StatusNotFound, "court not found", nil))

		err := s.workflow.LoadCourt(context.Background(), s.court.ID, booking.Preset{})

		s.Error(err)
		s.Equal(booking.PhaseFailed, s.workflow.Phase())
		s.Equal("court not found", errs.Message(s.workflow.Err(), ""))
	})

	s.Run("success: empty slot list is not an error", func() {
		s.SetupTest()
		s.ready()

		s.Equal(booking.AvailabilityNone, s.workflow.Availability())
		s.NoError(s.workflow.SlotsErr())
	})

	s.Run("error: slot fetch failure is distinct from no slots", func() {
		s.SetupTest()
		s.courts.EXPECT().Get(gomock.Any(), s.court.ID).Return(s.court, nil)
		s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).
			Return(reservation.SlotSet{}, errs.Transport("cannot connect to server", nil))

		err := s.workflow.LoadCourt(context.Background(), s.court.ID, booking.Preset{})

		s.Error(err)
		s.Equal(booking.PhaseReady, s.workflow.Phase())
		s.Equal(booking.AvailabilityUnknown, s.workflow.Availability())
		s.True(errs.IsKind(s.workflow.SlotsErr(), errs.KindTransport))
	})
}

func (s *WorkflowTestSuite) TestSelectStart() {
	s.Run("success: end defaults to one hour later", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")

		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))

		s.Equal("09:00", s.workflow.Start().String())
		s.Equal("10:00", s.workflow.End().String())
	})

	s.Run("success: default end is capped at the latest time", func() {
		s.SetupTest()
		s.ready("22:00")

		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("22:00")))

		s.Equal("22:30", s.workflow.End().String())
	})

	s.Run("error: start not in slot list", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")

		err := s.workflow.SelectStart(reservation.MustTimeOfDay("11:00"))

		s.assertField(err, "startTime")
		s.True(s.workflow.Start().IsZero())
	})
}

func (s *WorkflowTestSuite) TestSelectEnd() {
	s.Run("success: longer booking", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))

		s.Require().NoError(s.workflow.SelectEnd(reservation.MustTimeOfDay("10:30")))

		s.Equal("10:30", s.workflow.End().String())
		s.Equal(int64(3000), s.workflow.TotalPrice().Cents())
	})

	cases := []struct {
		name string
		end  string
	}{
		{name: "error: end equal to start", end: "09:00"},
		{name: "error: end before start", end: "08:30"},
		{name: "error: end after latest time", end: "23:00"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.ready("09:00", "10:00")
			s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))

			err := s.workflow.SelectEnd(reservation.MustTimeOfDay(tc.end))

			s.assertField(err, "endTime")
			s.Equal("10:00", s.workflow.End().String())
		})
	}

	s.Run("error: no start selected", func() {
		s.SetupTest()
		s.ready("09:00")

		s.assertField(s.workflow.SelectEnd(reservation.MustTimeOfDay("10:00")), "startTime")
	})
}

func (s *WorkflowTestSuite) TestSetDate() {
	s.Run("success: start missing from new list is cleared", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).Return(slots(s.T(), "10:00", "11:00"), nil)

		s.Require().NoError(s.workflow.SetDate(context.Background(), reservation.MustDate("2025-03-03")))

		s.Equal("2025-03-03", s.workflow.Date().String())
		s.True(s.workflow.Start().IsZero())
		s.True(s.workflow.End().IsZero())
	})

	s.Run("success: start kept when still offered", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("10:00")))
		s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).Return(slots(s.T(), "10:00"), nil)

		s.Require().NoError(s.workflow.SetDate(context.Background(), reservation.MustDate("2025-03-03")))

		s.Equal("10:00", s.workflow.Start().String())
	})

	s.Run("success: same date refetches", func() {
		s.SetupTest()
		s.ready("09:00")
		s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).Return(slots(s.T()), nil)

		s.Require().NoError(s.workflow.SetDate(context.Background(), s.workflow.Date()))

		s.Equal(booking.AvailabilityNone, s.workflow.Availability())
	})
}

func (s *WorkflowTestSuite) TestSubmit() {
	s.Run("success: pending reservation sent with idempotency key", func() {
		s.SetupTest()
		s.ready("09:00", "10:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.session.EXPECT().CurrentUser().Return(s.user, true)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation, key string) (*reservation.Reservation, error) {
				s.NotEmpty(key)
				s.Equal(s.user.ID, r.UserID)
				s.Equal(s.court.ID, r.CourtID)
				s.Equal(s.court.ClubID, r.ClubID)
				s.Equal(reservation.StatusPending, r.Status)
				s.Equal(reservation.PaymentPending, r.PaymentStatus)
				s.Equal("2025-03-02T09:00:00", r.StartTime.String())
				s.Equal("2025-03-02T10:00:00", r.EndTime.String())
				s.True(r.CreatedAt.Equal(now))
				created := *r
				created.ID = 100
				return &created, nil
			})

		out, err := s.workflow.Submit(context.Background())

		s.Require().NoError(err)
		s.True(out.Created)
		s.Equal(id.ID(100), out.Reservation.ID)
		s.Equal(booking.PhaseSucceeded, s.workflow.Phase())
		s.Same(out, s.workflow.Outcome())
	})

	s.Run("error: missing start is rejected without network", func() {
		s.SetupTest()
		s.ready("09:00")

		_, err := s.workflow.Submit(context.Background())

		s.assertField(err, "startTime")
		s.Equal(booking.PhaseReady, s.workflow.Phase())
	})

	s.Run("error: start no longer offered after refetch failure", func() {
		s.SetupTest()
		s.ready("09:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.courts.EXPECT().Available(gomock.Any(), s.court.ID, gomock.Any()).
			Return(reservation.SlotSet{}, errs.Transport("cannot connect to server", nil))
		s.Require().Error(s.workflow.SetDate(context.Background(), reservation.MustDate("2025-03-04")))

		_, err := s.workflow.Submit(context.Background())

		s.assertField(err, "startTime")
	})

	s.Run("error: anonymous user", func() {
		s.SetupTest()
		s.ready("09:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.session.EXPECT().CurrentUser().Return(nil, false)

		_, err := s.workflow.Submit(context.Background())

		s.assertField(err, "session")
	})

	s.Run("error: user without id is a session error, not a time error", func() {
		s.SetupTest()
		s.ready("09:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.session.EXPECT().CurrentUser().Return(builder.NewUserBuilder().WithID(id.Zero).Build(), true)

		_, err := s.workflow.Submit(context.Background())

		s.assertField(err, "session")
		s.Equal(booking.PhaseReady, s.workflow.Phase())
	})

	s.Run("error: server message is surfaced and retry reuses the key", func() {
		s.SetupTest()
		s.ready("09:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.session.EXPECT().CurrentUser().Return(s.user, true).Times(2)
		var keys []string
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *reservation.Reservation, key string) (*reservation.Reservation, error) {
				keys = append(keys, key)
				return nil, errs.Server(http.StatusConflict, "slot already taken", nil)
			}).Times(2)

		_, err := s.workflow.Submit(context.Background())
		s.Equal("slot already taken", errs.Message(err, ""))
		s.Equal(booking.PhaseReady, s.workflow.Phase())
		_, err = s.workflow.Submit(context.Background())
		s.Error(err)

		s.Require().Len(keys, 2)
		s.Equal(keys[0], keys[1])
	})

	s.Run("error: transport failure gets generic message", func() {
		s.SetupTest()
		s.ready("09:00")
		s.Require().NoError(s.workflow.SelectStart(reservation.MustTimeOfDay("09:00")))
		s.session.EXPECT().CurrentUser().Return(s.user, true)
		cause := errors.New("dial tcp: refused")
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Transport("cannot connect to server", cause))

		_, err := s.workflow.Submit(context.Background())

		s.Equal("could not create reservation", errs.Message(err, ""))
		s.True(errs.IsKind(err, errs.KindTransport))
		s.Equal(err, s.workflow.Err())
	})
}

func TestOptionsFromConfig(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		opts, err := booking.OptionsFromConfig(config.NewTestConfig().Booking)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.LatestEnd.String() != "22:30" || opts.DefaultDuration != time.Hour {
			t.Errorf("got %v %v", opts.LatestEnd, opts.DefaultDuration)
		}
	})

	t.Run("時刻形式NG", func(t *testing.T) {
		_, err := booking.OptionsFromConfig(config.BookingConfig{LatestEnd: "late"})
		if !errors.Is(err, reservation.ErrInvalidTimeOfDay) {
			t.Errorf("got %v", err)
		}
	})
}
