package devserver

import (
	"slices"
	"strings"
	"sync"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/id"
)

type account struct {
	user         user.User
	passwordHash string
}

type idempotencyEntry struct {
	requestHash   string
	reservationID id.ID
	expiresAt     time.Time
}

// Store keeps every record in memory behind one lock. Ids are allocated from
// a single sequence shared by all record types.
type Store struct {
	mu           sync.RWMutex
	seq          int64
	accounts     map[id.ID]*account
	clubs        map[id.ID]court.Club
	courts       map[id.ID]court.Court
	reservations map[id.ID]reservation.Reservation
	idempotency  map[string]idempotencyEntry
}

func NewStore() *Store {
	return &Store{
		accounts:     map[id.ID]*account{},
		clubs:        map[id.ID]court.Club{},
		courts:       map[id.ID]court.Court{},
		reservations: map[id.ID]reservation.Reservation{},
		idempotency:  map[string]idempotencyEntry{},
	}
}

func (s *Store) nextIDLocked() id.ID {
	s.seq++
	return id.ID(s.seq)
}

func sortedByID[T any](m map[id.ID]T) []T {
	keys := make([]id.ID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// users

func (s *Store) InsertUser(u user.User, passwordHash string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, u.Email) {
			return user.User{}, ErrEmailTaken
		}
	}
	u.ID = s.nextIDLocked()
	s.accounts[u.ID] = &account{user: u, passwordHash: passwordHash}
	return u, nil
}

func (s *Store) FindAccountByEmail(email string) (user.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return a.user, a.passwordHash, nil
		}
	}
	return user.User{}, "", ErrUserNotFound
}

func (s *Store) FindUser(userID id.ID) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[userID]
	if !ok {
		return user.User{}, ErrUserNotFound
	}
	return a.user, nil
}

// clubs

func (s *Store) ListClubs() []court.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.clubs)
}

func (s *Store) FindClub(clubID id.ID) (court.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clubs[clubID]
	if !ok {
		return court.Club{}, ErrNotFound
	}
	return c, nil
}

func (s *Store) clubNameTakenLocked(name string, except id.ID) bool {
	for _, c := range s.clubs {
		if c.ID != except && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) ClubNameExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clubNameTakenLocked(name, id.Zero)
}

func (s *Store) InsertClub(c court.Club) (court.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clubNameTakenLocked(c.Name, id.Zero) {
		return court.Club{}, ErrClubNameTaken
	}
	c.ID = s.nextIDLocked()
	s.clubs[c.ID] = c
	return c, nil
}

func (s *Store) UpdateClub(c court.Club) (court.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clubs[c.ID]; !ok {
		return court.Club{}, ErrNotFound
	}
	if s.clubNameTakenLocked(c.Name, c.ID) {
		return court.Club{}, ErrClubNameTaken
	}
	s.clubs[c.ID] = c
	return c, nil
}

// DeleteClub detaches the club's courts instead of deleting them.
func (s *Store) DeleteClub(clubID id.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clubs[clubID]; !ok {
		return ErrNotFound
	}
	delete(s.clubs, clubID)
	for cid, c := range s.courts {
		if c.ClubID == clubID {
			c.ClubID = id.Zero
			s.courts[cid] = c
		}
	}
	return nil
}

// courts

type CourtQuery struct {
	ClubID id.ID
	Type   court.Type
	Limit  int
}

func (s *Store) ListCourts(q CourtQuery) []court.Court {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]court.Court, 0, len(s.courts))
	for _, c := range sortedByID(s.courts) {
		if !q.ClubID.IsZero() && c.ClubID != q.ClubID {
			continue
		}
		if q.Type != "" && c.Type != q.Type {
			continue
		}
		out = append(out, s.withClubNameLocked(c))
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}

func (s *Store) withClubNameLocked(c court.Court) court.Court {
	c.ClubName = ""
	if club, ok := s.clubs[c.ClubID]; ok {
		c.ClubName = club.Name
	}
	return c
}

func (s *Store) FindCourt(courtID id.ID) (court.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courts[courtID]
	if !ok {
		return court.Court{}, ErrNotFound
	}
	return s.withClubNameLocked(c), nil
}

func (s *Store) InsertCourt(c court.Court) (court.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !c.ClubID.IsZero() {
		if _, ok := s.clubs[c.ClubID]; !ok {
			return court.Court{}, ErrNotFound
		}
	}
	c.ID = s.nextIDLocked()
	s.courts[c.ID] = c
	return s.withClubNameLocked(c), nil
}

func (s *Store) UpdateCourt(c court.Court) (court.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courts[c.ID]; !ok {
		return court.Court{}, ErrNotFound
	}
	s.courts[c.ID] = c
	return s.withClubNameLocked(c), nil
}

func (s *Store) DeleteCourt(courtID id.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courts[courtID]; !ok {
		return ErrNotFound
	}
	delete(s.courts, courtID)
	return nil
}

// reservations

type ReservationQuery struct {
	UserID  id.ID
	CourtID id.ID
	ClubID  id.ID
	Status  reservation.Status
	From    time.Time
	Until   time.Time
}

func (q ReservationQuery) matches(r *reservation.Reservation) bool {
	switch {
	case !q.UserID.IsZero() && r.UserID != q.UserID:
		return false
	case !q.CourtID.IsZero() && r.CourtID != q.CourtID:
		return false
	case !q.ClubID.IsZero() && r.ClubID != q.ClubID:
		return false
	case q.Status != "" && r.Status != q.Status:
		return false
	case !q.From.IsZero() && r.StartTime.Before(q.From):
		return false
	case !q.Until.IsZero() && !r.StartTime.Before(q.Until):
		return false
	}
	return true
}

func (s *Store) ListReservations(q ReservationQuery) []reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reservation.Reservation, 0)
	for _, r := range sortedByID(s.reservations) {
		if q.matches(&r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) FindReservation(reservationID id.ID) (reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return reservation.Reservation{}, ErrNotFound
	}
	return r, nil
}

func (s *Store) conflictLocked(courtID, except id.ID, start, end time.Time) bool {
	for _, r := range s.reservations {
		if r.ID == except || r.CourtID != courtID || r.IsCancelled() {
			continue
		}
		if r.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// HasConflict reports whether a live reservation on the court overlaps [start, end).
func (s *Store) HasConflict(courtID id.ID, start, end time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conflictLocked(courtID, id.Zero, start, end)
}

// InsertReservation checks for overlaps and inserts under the same lock.
// A non-empty idempotency key replays the reservation created by an earlier
// identical request instead of inserting a second one.
func (s *Store) InsertReservation(r reservation.Reservation, key, requestHash string, now time.Time, ttl time.Duration) (reservation.Reservation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := idempotencyKey(r.UserID, key)
	if key != "" {
		if e, ok := s.idempotency[k]; ok && !now.After(e.expiresAt) {
			if e.requestHash != requestHash {
				return reservation.Reservation{}, false, ErrIdempotencyMismatch
			}
			if prev, ok := s.reservations[e.reservationID]; ok {
				return prev, true, nil
			}
		}
	}

	if s.conflictLocked(r.CourtID, id.Zero, r.StartTime.Time, r.EndTime.Time) {
		return reservation.Reservation{}, false, ErrSlotTaken
	}
	r.ID = s.nextIDLocked()
	s.reservations[r.ID] = r
	if key != "" {
		s.idempotency[k] = idempotencyEntry{requestHash: requestHash, reservationID: r.ID, expiresAt: now.Add(ttl)}
	}
	return r, false, nil
}

func (s *Store) UpdateReservation(r reservation.Reservation) (reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[r.ID]; !ok {
		return reservation.Reservation{}, ErrNotFound
	}
	if !r.IsCancelled() && s.conflictLocked(r.CourtID, r.ID, r.StartTime.Time, r.EndTime.Time) {
		return reservation.Reservation{}, ErrSlotTaken
	}
	s.reservations[r.ID] = r
	return r, nil
}

// idempotency

func idempotencyKey(userID id.ID, key string) string {
	return userID.String() + ":" + key
}
