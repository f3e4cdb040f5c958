package client

import (
	"context"
	"errors"
	"time"

	"habitmaster/backend/analytics"
	"habitmaster/backend/models"
)

// ErrNotLoggedIn is returned by Session operations that need a user.
var ErrNotLoggedIn = errors.New("not logged in")

// Session holds the locally mirrored month snapshot.
//
// Habit creation is synchronous: the habit joins the local list only
// after the server has assigned it an ID. Toggle and delete are
// optimistic: local state mutates before the network call, and a
// failed call does NOT roll the mutation back — the error is returned
// so the caller can Refresh to reconcile with server truth.
type Session struct {
	api    *Client
	user   *models.User
	month  int // 0-based
	year   int
	habits []models.HabitWithDays
}

func NewSession(api *Client) *Session {
	now := time.Now()
	return &Session{
		api:   api,
		month: int(now.Month()) - 1,
		year:  now.Year(),
	}
}

// Login resolves the user and replaces the local snapshot with a fresh
// fetch for the current month.
func (s *Session) Login(ctx context.Context, username string) error {
	user, err := s.api.Login(ctx, username)
	if err != nil {
		return err
	}
	s.user = user
	return s.Refresh(ctx)
}

// Logout drops the user and the local snapshot.
func (s *Session) Logout() {
	s.user = nil
	s.habits = nil
}

// User returns the logged-in user, or nil. Callers that want the
// original's remembered-login behavior persist this themselves.
func (s *Session) User() *models.User { return s.user }

// Month returns the active 0-based month and year.
func (s *Session) Month() (int, int) { return s.month, s.year }

// SetMonth switches the active month and re-fetches the snapshot
// wholesale.
func (s *Session) SetMonth(ctx context.Context, month, year int) error {
	s.month = month
	s.year = year
	return s.Refresh(ctx)
}

// Refresh discards the local snapshot and replaces it with server
// truth. Last fetch wins; pending optimistic changes are dropped, not
// merged.
func (s *Session) Refresh(ctx context.Context) error {
	if s.user == nil {
		return ErrNotLoggedIn
	}
	habits, err := s.api.FetchMonth(ctx, s.user.ID, s.month, s.year)
	if err != nil {
		return err
	}
	s.habits = habits
	return nil
}

// Habits returns a copy of the local snapshot in creation order.
func (s *Session) Habits() []models.HabitWithDays {
	out := make([]models.HabitWithDays, len(s.habits))
	copy(out, s.habits)
	return out
}

// AddHabit creates a habit on the server and appends it locally once
// the server-assigned ID is known.
func (s *Session) AddHabit(ctx context.Context, name string) (*models.HabitWithDays, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	habit, err := s.api.CreateHabit(ctx, s.user.ID, name)
	if err != nil {
		return nil, err
	}
	s.habits = append(s.habits, *habit)
	return habit, nil
}

// ToggleDay flips the local completed-day membership first, then fires
// the network toggle. On failure local state stays flipped.
func (s *Session) ToggleDay(ctx context.Context, habitID uint, day int) error {
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			s.habits[i].CompletedDays = flipDay(s.habits[i].CompletedDays, day)
			break
		}
	}

	_, err := s.api.Toggle(ctx, habitID, day, s.month, s.year)
	return err
}

// DeleteHabit removes the habit locally first, then fires the network
// delete. On failure local state stays without the habit.
func (s *Session) DeleteHabit(ctx context.Context, habitID uint) error {
	kept := s.habits[:0]
	for _, habit := range s.habits {
		if habit.ID != habitID {
			kept = append(kept, habit)
		}
	}
	s.habits = kept

	return s.api.DeleteHabit(ctx, habitID)
}

// Analytics recomputes the monthly summary from the local snapshot.
func (s *Session) Analytics() analytics.Summary {
	return analytics.Compute(s.habits, analytics.DaysInMonth(s.month))
}

func flipDay(days []int, day int) []int {
	for i, d := range days {
		if d == day {
			return append(days[:i], days[i+1:]...)
		}
	}
	return append(days, day)
}
