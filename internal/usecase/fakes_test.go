package usecase

import (
	"context"
	"io"
	"sort"
	"time"

	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/internal/infrastructure/payment"
	"diagnostic-center-api/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// fakeTransactor runs fn directly and counts calls.
type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeUserRepo struct {
	users     map[string]entity.User
	createErr error
	findErr   error
	creates   int
	updates   int
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.updates++
	r.users[user.Email] = *user
	return nil
}

type fakeTestRepo struct {
	tests        map[string]entity.DiagnosticTest
	appointments *fakeAppointmentRepo
	createErr    error
}

func newFakeTestRepo(appointments *fakeAppointmentRepo, tests ...entity.DiagnosticTest) *fakeTestRepo {
	r := &fakeTestRepo{tests: map[string]entity.DiagnosticTest{}, appointments: appointments}
	for _, t := range tests {
		r.tests[t.Slug] = t
	}
	return r
}

func (r *fakeTestRepo) Create(ctx context.Context, test *entity.DiagnosticTest) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.tests[test.Slug] = *test
	return nil
}

func (r *fakeTestRepo) FindBySlug(ctx context.Context, slug string) (*entity.DiagnosticTest, error) {
	t, ok := r.tests[slug]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTestRepo) FindAllWithAvailability(ctx context.Context, bookingDate string) ([]entity.TestAvailability, error) {
	slugs := make([]string, 0, len(r.tests))
	for slug := range r.tests {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	result := make([]entity.TestAvailability, 0, len(slugs))
	for _, slug := range slugs {
		live, _ := r.appointments.FindActiveByTestAndDate(ctx, slug, bookingDate)
		test := r.tests[slug]
		result = append(result, entity.TestAvailability{
			Test:           test,
			RemainingSlots: service.RemainingSlots(test.Slots, service.BookedSlots(live)),
		})
	}
	return result, nil
}

func (r *fakeTestRepo) Update(ctx context.Context, test *entity.DiagnosticTest) error {
	r.tests[test.Slug] = *test
	return nil
}

func (r *fakeTestRepo) Delete(ctx context.Context, slug string) (int64, error) {
	if _, ok := r.tests[slug]; !ok {
		return 0, nil
	}
	delete(r.tests, slug)
	return 1, nil
}

type fakeAppointmentRepo struct {
	items     map[uuid.UUID]entity.Appointment
	createErr error
	updateErr error
	updates   int
}

func newFakeAppointmentRepo(appointments ...entity.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{items: map[uuid.UUID]entity.Appointment{}}
	for _, a := range appointments {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	appointment.ID = uuid.New()
	r.items[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return r.filter(func(entity.Appointment) bool { return true }), nil
}

func (r *fakeAppointmentRepo) FindUpcomingByEmail(ctx context.Context, email string, now time.Time) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool {
		return a.UserEmail == email && !a.StartAppointment.Before(now)
	}), nil
}

func (r *fakeAppointmentRepo) FindByUserAndSlot(ctx context.Context, email, bookingDate, bookingSlot string) (*entity.Appointment, error) {
	found := r.filter(func(a entity.Appointment) bool {
		return a.UserEmail == email && a.BookingDate == bookingDate && a.BookingSlot == bookingSlot && !a.IsCancelled()
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *fakeAppointmentRepo) FindActiveByTestAndDate(ctx context.Context, testSlug, bookingDate string) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool {
		return a.TestSlug == testSlug && a.BookingDate == bookingDate && !a.IsCancelled()
	}), nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.items[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeAppointmentRepo) filter(keep func(entity.Appointment) bool) []entity.Appointment {
	result := []entity.Appointment{}
	for _, a := range r.items {
		if keep(a) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAppointment.Before(result[j].StartAppointment) })
	return result
}

type fakePaymentRepo struct {
	payments  []entity.Payment
	createErr error
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = uuid.New()
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakePaymentRepo) FindByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	result := []entity.Payment{}
	for _, p := range r.payments {
		if p.Email == email {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeBannerRepo struct {
	banners map[uuid.UUID]entity.Banner
}

func newFakeBannerRepo(banners ...entity.Banner) *fakeBannerRepo {
	r := &fakeBannerRepo{banners: map[uuid.UUID]entity.Banner{}}
	for _, b := range banners {
		r.banners[b.ID] = b
	}
	return r
}

func (r *fakeBannerRepo) Create(ctx context.Context, banner *entity.Banner) error {
	banner.ID = uuid.New()
	r.banners[banner.ID] = *banner
	return nil
}

func (r *fakeBannerRepo) FindAll(ctx context.Context) ([]entity.Banner, error) {
	result := make([]entity.Banner, 0, len(r.banners))
	for _, b := range r.banners {
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	b, ok := r.banners[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBannerRepo) FindActive(ctx context.Context) (*entity.Banner, error) {
	for _, b := range r.banners {
		if b.IsActive {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBannerRepo) Activate(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	for key, b := range r.banners {
		if b.IsActive || key == id {
			b.IsActive = key == id
			r.banners[key] = b
			affected++
		}
	}
	return affected, nil
}

func (r *fakeBannerRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.banners[id]; !ok {
		return 0, nil
	}
	delete(r.banners, id)
	return 1, nil
}

func (r *fakeBannerRepo) activeCount() int {
	n := 0
	for _, b := range r.banners {
		if b.IsActive {
			n++
		}
	}
	return n
}

type fakeSlotLocker struct {
	held     map[string]bool
	acquired int
	released int
	err      error
}

func newFakeSlotLocker() *fakeSlotLocker {
	return &fakeSlotLocker{held: map[string]bool{}}
}

func (l *fakeSlotLocker) Acquire(ctx context.Context, testSlug, bookingDate, bookingSlot string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	key := service.SlotLockKey(testSlug, bookingDate, bookingSlot)
	if l.held[key] {
		return nil, service.ErrSlotLocked
	}
	l.held[key] = true
	l.acquired++
	return func() {
		delete(l.held, key)
		l.released++
	}, nil
}

type fakeGateway struct {
	calls    int
	amount   int64
	currency string
	err      error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	g.calls++
	g.amount = amount
	g.currency = currency
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret", Amount: amount, Currency: currency}, nil
}
