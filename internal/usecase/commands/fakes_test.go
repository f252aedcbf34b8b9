//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/domain/cart"
	"github.com/KingCastle/Javan/internal/domain/event"
	"github.com/KingCastle/Javan/internal/infra"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// =============================================================================
// In-memory unit of work
// =============================================================================

type storedJob struct {
	ID    uuid.UUID
	Kind  string
	Topic string
	RunAt time.Time
}

// fakeStore serializes write transactions on txLock, which stands in for the
// event row lock taken by LockForBooking.
type fakeStore struct {
	txLock sync.Mutex
	mu     sync.Mutex

	events      map[uuid.UUID]*shared.EventSnapshot
	users       map[uuid.UUID]*shared.UserSnapshot
	bookings    map[uuid.UUID]*booking.Booking
	jobs        []storedJob
	compensated map[string]string

	createErr       error
	markRefundedErr error
	jobErr          error
	compensateErr   error
	withinCalls     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:      make(map[uuid.UUID]*shared.EventSnapshot),
		users:       make(map[uuid.UUID]*shared.UserSnapshot),
		bookings:    make(map[uuid.UUID]*booking.Booking),
		compensated: make(map[string]string),
	}
}

func (s *fakeStore) addEvent(ev *shared.EventSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *ev
	s.events[ev.ID] = &cp
}

func (s *fakeStore) addUser(u *shared.UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *fakeStore) addBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
}

func (s *fakeStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *fakeStore) booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}

func (s *fakeStore) compensation(chargeID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reason, ok := s.compensated[chargeID]
	return reason, ok
}

func (s *fakeStore) jobKinds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]string, len(s.jobs))
	for i, j := range s.jobs {
		kinds[i] = j.Kind
	}
	return kinds
}

func (s *fakeStore) activeSeats(eventID uuid.UUID, extra []*booking.Booking) int {
	all := make([]*booking.Booking, 0, len(s.bookings)+len(extra))
	for _, b := range s.bookings {
		if b.EventID() == eventID {
			all = append(all, b)
		}
	}
	for _, b := range extra {
		if b.EventID() == eventID {
			all = append(all, b)
		}
	}
	return booking.CountActiveSeats(all)
}

func (s *fakeStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txLock.Lock()
	defer s.txLock.Unlock()

	s.mu.Lock()
	s.withinCalls++
	s.mu.Unlock()

	tx := &fakeTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (s *fakeStore) CommandReads() shared.CommandReads {
	return s
}

func (s *fakeStore) EventByID(_ context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[id]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	cp := *ev
	cp.BookedSeats += s.activeSeats(id, nil)
	return &cp, nil
}

func (s *fakeStore) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap := &shared.BookingSnapshot{
		ID:         b.ID(),
		UserID:     b.UserID(),
		EventID:    b.EventID(),
		ChargeID:   b.ChargeID(),
		RefundID:   b.RefundID(),
		Seats:      b.Seats(),
		TotalCents: b.TotalCents(),
		Ticket:     b.Ticket().Int(),
		Active:     b.IsActive(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
	if u, ok := s.users[b.UserID()]; ok {
		snap.UserEmail = u.Email
		snap.UserName = u.Name
	}
	if ev, ok := s.events[b.EventID()]; ok {
		snap.EventTitle = ev.Title
		snap.EventStartAt = ev.StartAt
	}
	return snap, nil
}

func (s *fakeStore) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

type fakeTx struct {
	store    *fakeStore
	created  []*booking.Booking
	refunded []*booking.Booking
	deleted  []uuid.UUID
	jobs     []storedJob
	marked   map[string]string
	cleared  []string
}

func (tx *fakeTx) Bookings() shared.BookingRepository           { return tx }
func (tx *fakeTx) Events() shared.EventRepository               { return (*fakeTxEvents)(tx) }
func (tx *fakeTx) Notifications() shared.NotificationRepository { return (*fakeTxJobs)(tx) }
func (tx *fakeTx) Reads() shared.CommandReads                   { return tx.store }
func (tx *fakeTx) DB() sqlc.DBTX                                { return nil }

func (tx *fakeTx) commit() {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range tx.created {
		s.bookings[b.ID()] = b
	}
	for _, b := range tx.refunded {
		s.bookings[b.ID()] = b
	}
	for _, id := range tx.deleted {
		delete(s.bookings, id)
	}
	s.jobs = append(s.jobs, tx.jobs...)
	for chargeID, reason := range tx.marked {
		s.compensated[chargeID] = reason
	}
	for _, chargeID := range tx.cleared {
		delete(s.compensated, chargeID)
	}
}

func (tx *fakeTx) TicketTaken(_ context.Context, _ sqlc.DBTX, eventID uuid.UUID, ticket booking.Ticket) (bool, error) {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.EventID() == eventID && b.IsActive() && b.Ticket() == ticket {
			return true, nil
		}
	}
	for _, b := range tx.created {
		if b.EventID() == eventID && b.Ticket() == ticket {
			return true, nil
		}
	}
	return false, nil
}

func (tx *fakeTx) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.bookings {
		if existing.ChargeID() != nil && b.ChargeID() != nil && *existing.ChargeID() == *b.ChargeID() {
			dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
			return infra.WrapRepoErr("failed to create booking", dup)
		}
	}
	tx.created = append(tx.created, b)
	return nil
}

func (tx *fakeTx) MarkRefunded(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.markRefundedErr != nil {
		return s.markRefundedErr
	}
	if _, ok := s.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found or already refunded", nil, infra.KindNotFound)
	}
	tx.refunded = append(tx.refunded, b)
	return nil
}

func (tx *fakeTx) Delete(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) error {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	tx.deleted = append(tx.deleted, bookingID)
	return nil
}

func (tx *fakeTx) IsCompensated(_ context.Context, _ sqlc.DBTX, chargeID string) (bool, error) {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.compensated[chargeID]
	return ok, nil
}

func (tx *fakeTx) MarkCompensated(_ context.Context, _ sqlc.DBTX, chargeID, reason string, _ time.Time) (bool, error) {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.compensateErr != nil {
		return false, s.compensateErr
	}
	for _, b := range s.bookings {
		if b.ChargeID() != nil && *b.ChargeID() == chargeID {
			return false, nil
		}
	}
	if tx.marked == nil {
		tx.marked = make(map[string]string)
	}
	tx.marked[chargeID] = reason
	return true, nil
}

func (tx *fakeTx) ClearCompensation(_ context.Context, _ sqlc.DBTX, chargeID string) error {
	tx.cleared = append(tx.cleared, chargeID)
	return nil
}

type fakeTxEvents fakeTx

func (e *fakeTxEvents) LockForBooking(_ context.Context, _ sqlc.DBTX, eventID uuid.UUID) (*event.Event, error) {
	tx := (*fakeTx)(e)
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[eventID]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	booked := ev.BookedSeats + s.activeSeats(eventID, tx.created)
	return event.ReconstructEvent(ev.ID, ev.Title, ev.Capacity, ev.PriceCents, ev.StartAt, ev.FinishAt, booked), nil
}

type fakeTxJobs fakeTx

func (j *fakeTxJobs) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, _ []byte, runAt time.Time) (uuid.UUID, error) {
	tx := (*fakeTx)(j)
	tx.store.mu.Lock()
	jobErr := tx.store.jobErr
	tx.store.mu.Unlock()
	if jobErr != nil {
		return uuid.Nil, jobErr
	}

	id := uuid.New()
	tx.jobs = append(tx.jobs, storedJob{ID: id, Kind: kind, Topic: topic, RunAt: runAt})
	return id, nil
}

// =============================================================================
// Cart, metrics, dispatcher and ticket fakes
// =============================================================================

type fakeCart struct {
	snapshot cart.Snapshot
	cleared  int
	clearErr error
}

func newFakeCart(eventID uuid.UUID, quantity int, unitPrice int64) *fakeCart {
	item, err := cart.NewLineItem(eventID, quantity, unitPrice)
	if err != nil {
		panic(err)
	}
	return &fakeCart{snapshot: cart.NewSnapshot(item)}
}

func (c *fakeCart) Snapshot() cart.Snapshot { return c.snapshot }

func (c *fakeCart) Clear(_ context.Context) error {
	if c.clearErr != nil {
		return c.clearErr
	}
	c.cleared++
	c.snapshot = cart.EmptySnapshot()
	return nil
}

type fakeMetrics struct {
	mu            sync.Mutex
	bookings      map[string]int
	refunds       map[string]int
	compensations map[string]int
	notifications map[string]int
	drops         int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		bookings:      make(map[string]int),
		refunds:       make(map[string]int),
		compensations: make(map[string]int),
		notifications: make(map[string]int),
	}
}

func (m *fakeMetrics) ObserveBooking(outcome string, _ int, _ int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[outcome]++
}

func (m *fakeMetrics) ObserveRefund(outcome string, _ int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refunds[outcome]++
}

func (m *fakeMetrics) ObserveCompensation(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compensations[outcome]++
}

func (m *fakeMetrics) ObserveNotification(_, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications[outcome]++
}

func (m *fakeMetrics) ObserveQueueDrop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drops++
}

func (m *fakeMetrics) booking(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[outcome]
}

type fakeDispatcher struct {
	mu   sync.Mutex
	jobs []shared.NotificationJob
}

func (d *fakeDispatcher) Enqueue(_ context.Context, job shared.NotificationJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
}

func (d *fakeDispatcher) kinds() []shared.NotificationKind {
	d.mu.Lock()
	defer d.mu.Unlock()
	kinds := make([]shared.NotificationKind, len(d.jobs))
	for i, j := range d.jobs {
		kinds[i] = j.Kind
	}
	return kinds
}

// sequenceTickets replays a fixed list of codes, then repeats the last one.
type sequenceTickets struct {
	mu    sync.Mutex
	codes []int
	calls int
}

func (g *sequenceTickets) Next() booking.Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.calls
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	g.calls++
	return booking.Ticket(g.codes[i])
}
