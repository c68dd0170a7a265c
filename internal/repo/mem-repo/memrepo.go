// Package memrepo keeps every table of the process core in memory. It backs
// scenario tests that drive the services and both pollers together.
// Transactions are serialized by a single lock and roll back by restoring a
// snapshot, which is stricter than row locking but preserves its guarantees.
package memrepo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AhmedSalem104/voltyks/internal/domain"
	"github.com/AhmedSalem104/voltyks/internal/pg"
)

type txKey struct{}

// Unique violations surface the same way Postgres reports them.
var (
	errUniqueRequest = &pgconn.PgError{Code: "23505", ConstraintName: "processes_charger_request_id_key"}
	errUniqueRater   = &pgconn.PgError{Code: "23505", ConstraintName: "ratings_history_rater_uq"}
)

type state struct {
	requests      map[int64]domain.ChargingRequest
	processes     map[int64]domain.Process
	ratings       []domain.RatingHistory
	users         map[uuid.UUID]domain.User
	reports       map[int64]int
	notifications []domain.Notification
	transitions   map[int64]int
	nextID        int64
}

func (st *state) clone() *state {
	c := &state{
		requests:      make(map[int64]domain.ChargingRequest, len(st.requests)),
		processes:     make(map[int64]domain.Process, len(st.processes)),
		ratings:       slices.Clone(st.ratings),
		users:         make(map[uuid.UUID]domain.User, len(st.users)),
		reports:       make(map[int64]int, len(st.reports)),
		notifications: slices.Clone(st.notifications),
		transitions:   make(map[int64]int, len(st.transitions)),
		nextID:        st.nextID,
	}
	for k, v := range st.requests {
		c.requests[k] = v
	}
	for k, v := range st.processes {
		c.processes[k] = v
	}
	for k, v := range st.users {
		v.CurrentActivities = slices.Clone(v.CurrentActivities)
		c.users[k] = v
	}
	for k, v := range st.reports {
		c.reports[k] = v
	}
	for k, v := range st.transitions {
		c.transitions[k] = v
	}
	return c
}

type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: &state{
		requests:    map[int64]domain.ChargingRequest{},
		processes:   map[int64]domain.Process{},
		users:       map[uuid.UUID]domain.User{},
		reports:     map[int64]int{},
		transitions: map[int64]int{},
	}}
}

// Begin implements pg.TXManager.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) do(ctx context.Context, fn func(st *state)) {
	if ctx.Value(txKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn(s.st)
}

func (s *Store) id() int64 {
	s.st.nextID++
	return s.st.nextID
}

// Seeding and inspection helpers.

func (s *Store) PutUser(u domain.User) {
	s.do(context.Background(), func(st *state) { st.users[u.ID] = u })
}

func (s *Store) PutRequest(r domain.ChargingRequest) int64 {
	var id int64
	s.do(context.Background(), func(st *state) {
		if r.ID == 0 {
			r.ID = s.id()
		}
		st.requests[r.ID] = r
		id = r.ID
	})
	return id
}

func (s *Store) PutReport(processID int64) {
	s.do(context.Background(), func(st *state) { st.reports[processID]++ })
}

// Mutate edits a stored process outside any service, as an operator would.
func (s *Store) Mutate(processID int64, fn func(p *domain.Process)) {
	s.do(context.Background(), func(st *state) {
		p := st.processes[processID]
		fn(&p)
		st.processes[processID] = p
	})
}

func (s *Store) Process(id int64) (domain.Process, bool) {
	var p domain.Process
	var ok bool
	s.do(context.Background(), func(st *state) { p, ok = st.processes[id] })
	return p, ok
}

func (s *Store) Request(id int64) domain.ChargingRequest {
	var r domain.ChargingRequest
	s.do(context.Background(), func(st *state) { r = st.requests[id] })
	return r
}

func (s *Store) User(id uuid.UUID) domain.User {
	var u domain.User
	s.do(context.Background(), func(st *state) {
		u = st.users[id]
		u.CurrentActivities = slices.Clone(u.CurrentActivities)
	})
	return u
}

func (s *Store) RatingHistory(processID int64) []domain.RatingHistory {
	var out []domain.RatingHistory
	s.do(context.Background(), func(st *state) {
		for _, h := range st.ratings {
			if h.ProcessID == processID {
				out = append(out, h)
			}
		}
	})
	return out
}

func (s *Store) Notifications() []domain.Notification {
	var out []domain.Notification
	s.do(context.Background(), func(st *state) { out = slices.Clone(st.notifications) })
	return out
}

// Transitions counts how many times the status of a process changed.
func (s *Store) Transitions(processID int64) int {
	var n int
	s.do(context.Background(), func(st *state) { n = st.transitions[processID] })
	return n
}

func (s *Store) Requests() *Requests   { return &Requests{s} }
func (s *Store) Processes() *Processes { return &Processes{s} }
func (s *Store) Ratings() *Ratings     { return &Ratings{s} }
func (s *Store) Users() *Users         { return &Users{s} }
func (s *Store) Reports() *Reports     { return &Reports{s} }
func (s *Store) Outbox() *Outbox       { return &Outbox{s} }

type Requests struct{ s *Store }

func (r *Requests) GetForUpdate(ctx context.Context, id int64) (*domain.ChargingRequest, error) {
	var out *domain.ChargingRequest
	r.s.do(ctx, func(st *state) {
		if req, ok := st.requests[id]; ok {
			out = &req
		}
	})
	return out, nil
}

func (r *Requests) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.s.do(ctx, func(st *state) {
		req := st.requests[id]
		req.Status = status
		st.requests[id] = req
	})
	return nil
}

type Processes struct{ s *Store }

func (r *Processes) Create(ctx context.Context, p *domain.Process) (int64, error) {
	var err error
	r.s.do(ctx, func(st *state) {
		for _, existing := range st.processes {
			if existing.ChargerRequestID == p.ChargerRequestID {
				err = errUniqueRequest
				return
			}
		}
		p.ID = r.s.id()
		st.processes[p.ID] = *p
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *Processes) Get(ctx context.Context, id int64) (*domain.Process, error) {
	var out *domain.Process
	r.s.do(ctx, func(st *state) {
		if p, ok := st.processes[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *Processes) GetForUpdate(ctx context.Context, id int64) (*domain.Process, error) {
	return r.Get(ctx, id)
}

func (r *Processes) GetByRequestID(ctx context.Context, requestID int64) (*domain.Process, error) {
	var out *domain.Process
	r.s.do(ctx, func(st *state) {
		for _, p := range st.processes {
			if p.ChargerRequestID == requestID {
				out = &p
				return
			}
		}
	})
	return out, nil
}

func (r *Processes) Update(ctx context.Context, p *domain.Process) error {
	r.s.do(ctx, func(st *state) {
		if prev, ok := st.processes[p.ID]; ok && prev.Status != p.Status {
			st.transitions[p.ID]++
		}
		st.processes[p.ID] = *p
	})
	return nil
}

func (r *Processes) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error) {
	var out []domain.Activity
	r.s.do(ctx, func(st *state) {
		for _, p := range st.processes {
			if !p.IsParty(userID) {
				continue
			}
			req := st.requests[p.ChargerRequestID]
			out = append(out, domain.Activity{Process: p, ChargerID: req.ChargerID, BaseAmount: req.BaseAmount, Fees: req.Fees})
		}
	})
	slices.SortFunc(out, func(a, b domain.Activity) int { return b.DateCreated.Compare(a.DateCreated) })
	return out, nil
}

func (r *Processes) FindRatingWindowExpired(ctx context.Context, cutoff time.Time) ([]int64, error) {
	var ids []int64
	r.s.do(ctx, func(st *state) {
		for id, p := range st.processes {
			if p.AwaitsDefaultRating() && p.RatingWindowOpenedAt.Before(cutoff) {
				ids = append(ids, id)
			}
		}
	})
	slices.Sort(ids)
	return ids, nil
}

type Ratings struct{ s *Store }

func (r *Ratings) Exists(ctx context.Context, processID int64, raterID uuid.UUID) (bool, error) {
	var found bool
	r.s.do(ctx, func(st *state) {
		for _, h := range st.ratings {
			if h.ProcessID == processID && h.RaterID == raterID {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r *Ratings) Create(ctx context.Context, h *domain.RatingHistory) error {
	var err error
	r.s.do(ctx, func(st *state) {
		for _, existing := range st.ratings {
			if existing.ProcessID != h.ProcessID {
				continue
			}
			system := h.RaterID == domain.SystemRaterID
			if (!system && existing.RaterID == h.RaterID) ||
				(system && existing.RaterID == domain.SystemRaterID && existing.RateeID == h.RateeID) {
				err = errUniqueRater
				return
			}
		}
		h.ID = r.s.id()
		st.ratings = append(st.ratings, *h)
	})
	return err
}

type Users struct{ s *Store }

func (r *Users) AddActivity(ctx context.Context, userID uuid.UUID, processID int64) error {
	r.s.do(ctx, func(st *state) {
		u, ok := st.users[userID]
		if !ok || slices.Contains(u.CurrentActivities, processID) {
			return
		}
		u.CurrentActivities = append(slices.Clone(u.CurrentActivities), processID)
		st.users[userID] = u
	})
	return nil
}

func (r *Users) ReleaseActivity(ctx context.Context, userID uuid.UUID, processID int64) error {
	r.s.do(ctx, func(st *state) {
		u, ok := st.users[userID]
		if !ok {
			return
		}
		u.CurrentActivities = slices.DeleteFunc(slices.Clone(u.CurrentActivities), func(id int64) bool { return id == processID })
		if len(u.CurrentActivities) == 0 {
			u.IsAvailable = true
		}
		st.users[userID] = u
	})
	return nil
}

func (r *Users) RestoreAvailability(ctx context.Context, userID uuid.UUID) error {
	r.s.do(ctx, func(st *state) {
		u, ok := st.users[userID]
		if ok && !u.IsAvailable && len(u.CurrentActivities) == 0 {
			u.IsAvailable = true
			st.users[userID] = u
		}
	})
	return nil
}

func (r *Users) ApplyRating(ctx context.Context, userID uuid.UUID, stars float64) error {
	r.s.do(ctx, func(st *state) {
		u, ok := st.users[userID]
		if !ok {
			return
		}
		u.Rating = (u.Rating*float64(u.RatingCount) + stars) / float64(u.RatingCount+1)
		u.RatingCount++
		st.users[userID] = u
	})
	return nil
}

func (r *Users) ListWithActivity(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	r.s.do(ctx, func(st *state) {
		for _, u := range st.users {
			if !u.IsAvailable || len(u.CurrentActivities) > 0 {
				u.CurrentActivities = slices.Clone(u.CurrentActivities)
				out = append(out, u)
			}
		}
	})
	slices.SortFunc(out, func(a, b domain.User) int { return slices.Compare(a.ID[:], b.ID[:]) })
	return out, nil
}

type Reports struct{ s *Store }

func (r *Reports) ExistsForProcess(ctx context.Context, processID int64) (bool, error) {
	var found bool
	r.s.do(ctx, func(st *state) { found = st.reports[processID] > 0 })
	return found, nil
}

// Outbox records notifications instead of delivering them.
type Outbox struct{ s *Store }

func (o *Outbox) Notify(ctx context.Context, n domain.Notification, _ map[string]string) {
	o.s.do(context.Background(), func(st *state) { st.notifications = append(st.notifications, n) })
}
