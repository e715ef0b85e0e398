package session

import (
	"context"
	"log/slog"
	"sync"

	"cancha-client/internal/domain/user"
)

// Store owns the cached projection of "who is logged in" and fans it out to
// any number of subscribers. The durable backend is written before the
// in-memory state changes, so a failed save leaves both halves untouched.
type Store struct {
	backend Backend
	logger  *slog.Logger

	mu          sync.RWMutex
	rec         *Record
	subscribers map[chan *user.User]struct{}
}

func NewStore(ctx context.Context, backend Backend, logger *slog.Logger) (*Store, error) {
	rec, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{
		backend:     backend,
		logger:      logger,
		rec:         rec,
		subscribers: make(map[chan *user.User]struct{}),
	}, nil
}

// Save caches the identity returned by login. All fields are written
// together; the password never reaches the record.
func (s *Store) Save(ctx context.Context, u user.User, token string) error {
	rec := Record{
		UserID:   u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Surname:  u.Surname,
		Phone:    u.Phone,
		Role:     u.Role.String(),
		Token:    token,
		LoggedIn: true,
	}
	if err := s.backend.Save(ctx, rec); err != nil {
		return err
	}

	s.mu.Lock()
	s.rec = &rec
	current := s.currentLocked()
	s.publishLocked(current)
	s.mu.Unlock()
	return nil
}

// Logout clears every stored field; subsequent reads behave as
// never-logged-in.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.rec = nil
	s.publishLocked(nil)
	s.mu.Unlock()
	return nil
}

// Current reconstructs the cached user, or nil when not logged in. A corrupt
// stored role degrades to Member rather than failing the read.
func (s *Store) Current() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocked()
}

func (s *Store) currentLocked() *user.User {
	if s.rec == nil || !s.rec.LoggedIn {
		return nil
	}
	return &user.User{
		ID:      s.rec.UserID,
		Email:   s.rec.Email,
		Name:    s.rec.Name,
		Surname: s.rec.Surname,
		Phone:   s.rec.Phone,
		Active:  true,
		Role:    user.RoleOrMember(s.rec.Role),
	}
}

// Subscribe registers a stream of user snapshots. The current value is
// delivered immediately; a slow subscriber keeps only the latest value.
func (s *Store) Subscribe() chan *user.User {
	ch := make(chan *user.User, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	send(ch, s.currentLocked())
	s.mu.Unlock()
	return ch
}

func (s *Store) Unsubscribe(ch chan *user.User) {
	s.mu.Lock()
	if _, ok := s.subscribers[ch]; ok {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()
}

func (s *Store) publishLocked(u *user.User) {
	for ch := range s.subscribers {
		send(ch, u)
	}
}

// send keeps the latest value: when the buffer is full, the stale snapshot
// is dropped in favor of the new one.
func send(ch chan *user.User, u *user.User) {
	for {
		select {
		case ch <- u:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (s *Store) IsLoggedIn() bool {
	return s.Current() != nil
}

func (s *Store) IsAdmin() bool {
	u := s.Current()
	return u != nil && u.IsAdmin()
}

// UserIDNow is a one-shot read for workflow steps that need the acting
// user's id without subscribing. The boolean is the authority: id zero is
// never a valid identity.
func (s *Store) UserIDNow() (int64, bool) {
	u := s.Current()
	if u == nil || u.ID == 0 {
		return 0, false
	}
	return u.ID, true
}

// AdminEmailNow returns the cached email when the current user is an admin.
func (s *Store) AdminEmailNow() (string, bool) {
	u := s.Current()
	if u == nil || !u.IsAdmin() || u.Email == "" {
		return "", false
	}
	return u.Email, true
}

// TokenNow returns the cached bearer token, if login supplied one.
func (s *Store) TokenNow() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil || !s.rec.LoggedIn || s.rec.Token == "" {
		return "", false
	}
	return s.rec.Token, true
}
