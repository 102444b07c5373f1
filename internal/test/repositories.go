package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests. It is safe for
// concurrent use.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error

	mu sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.init()
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user.ID = s.Next
	s.Next++
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update changes non-empty fields of user id.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, email, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if email != "" && email != user.Email {
		if _, taken := s.Users[email]; taken {
			return nil, domainErrors.ErrAlreadyExists
		}
		delete(s.Users, user.Email)
		user.Email = email
		s.Users[email] = user
	}
	if passwordHash != "" {
		user.PasswordHash = passwordHash
	}
	cp := *user
	return &cp, nil
}

// Put inserts user as is, replacing any previous entry with the same id.
func (s *UserRepositoryStub) Put(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
}

// Remove drops user id.
func (s *UserRepositoryStub) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByID[id]; ok {
		delete(s.Users, user.Email)
		delete(s.ByID, id)
	}
}

func (s *UserRepositoryStub) init() {
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if s.Next == 0 {
		s.Next = 1
	}
}

// TokenRepositoryStub is an in-memory valid-token record safe for concurrent use.
type TokenRepositoryStub struct {
	SaveErr   error
	LookupErr error

	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewTokenRepositoryStub constructs an empty token record.
func NewTokenRepositoryStub() *TokenRepositoryStub {
	return &TokenRepositoryStub{sessions: make(map[string]model.Session)}
}

// Save records session.
func (s *TokenRepositoryStub) Save(ctx context.Context, session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.sessions == nil {
		s.sessions = make(map[string]model.Session)
	}
	s.sessions[session.Signature] = session
	return nil
}

// Lookup returns the session stored under signature.
func (s *TokenRepositoryStub) Lookup(ctx context.Context, signature string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	session, ok := s.sessions[signature]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &session, nil
}

// Delete forgets signature.
func (s *TokenRepositoryStub) Delete(ctx context.Context, signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, signature)
	return nil
}

// PurgeExpired removes sessions expired at now.
func (s *TokenRepositoryStub) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for sig, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, sig)
			n++
		}
	}
	return n, nil
}

// Len returns the number of recorded sessions.
func (s *TokenRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// FranchiseRepositoryStub keeps franchises in memory.
type FranchiseRepositoryStub struct {
	Franchises map[int64]*model.Franchise
	NextID     int64
	Err        error

	ListDetails []bool
	mu          sync.Mutex
}

// NewFranchiseRepositoryStub constructs an empty franchise stub.
func NewFranchiseRepositoryStub() *FranchiseRepositoryStub {
	return &FranchiseRepositoryStub{Franchises: make(map[int64]*model.Franchise), NextID: 1}
}

// List returns every franchise ordered by id. Admins and revenue are dropped
// unless withDetails is set.
func (s *FranchiseRepositoryStub) List(ctx context.Context, withDetails bool) ([]model.Franchise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListDetails = append(s.ListDetails, withDetails)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Franchise, 0, len(s.Franchises))
	for _, f := range s.Franchises {
		cp := copyFranchise(f)
		if !withDetails {
			cp.Admins = nil
			for i := range cp.Stores {
				cp.Stores[i].TotalRevenue = 0
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListByAdmin returns franchises where userID is an admin.
func (s *FranchiseRepositoryStub) ListByAdmin(ctx context.Context, userID int64) ([]model.Franchise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Franchise{}
	for _, f := range s.Franchises {
		for _, a := range f.Admins {
			if a.ID == userID {
				out = append(out, copyFranchise(f))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns franchise id or not found.
func (s *FranchiseRepositoryStub) Get(ctx context.Context, id int64) (*model.Franchise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	f, ok := s.Franchises[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	cp := copyFranchise(f)
	return &cp, nil
}

// Create stores a franchise; names are unique.
func (s *FranchiseRepositoryStub) Create(ctx context.Context, name string, admins []model.FranchiseAdmin) (*model.Franchise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Franchises == nil {
		s.Franchises = make(map[int64]*model.Franchise)
	}
	for _, f := range s.Franchises {
		if f.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	f := &model.Franchise{ID: s.NextID, Name: name, Admins: append([]model.FranchiseAdmin(nil), admins...), Stores: []model.Store{}}
	s.NextID++
	s.Franchises[f.ID] = f
	cp := copyFranchise(f)
	return &cp, nil
}

// Delete removes franchise id if present.
func (s *FranchiseRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	delete(s.Franchises, id)
	return nil
}

// CreateStore adds a store to franchiseID.
func (s *FranchiseRepositoryStub) CreateStore(ctx context.Context, franchiseID int64, name string) (*model.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	f, ok := s.Franchises[franchiseID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	store := model.Store{ID: s.NextID, FranchiseID: franchiseID, Name: name}
	s.NextID++
	f.Stores = append(f.Stores, store)
	return &store, nil
}

// DeleteStore removes storeID from franchiseID.
func (s *FranchiseRepositoryStub) DeleteStore(ctx context.Context, franchiseID, storeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	f, ok := s.Franchises[franchiseID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i, st := range f.Stores {
		if st.ID == storeID {
			f.Stores = append(f.Stores[:i], f.Stores[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func copyFranchise(f *model.Franchise) model.Franchise {
	cp := *f
	cp.Admins = append([]model.FranchiseAdmin(nil), f.Admins...)
	cp.Stores = append([]model.Store{}, f.Stores...)
	return cp
}

// MenuRepositoryStub keeps menu items in memory.
type MenuRepositoryStub struct {
	Items []model.MenuItem
	Err   error
}

// List returns configured items.
func (s *MenuRepositoryStub) List(ctx context.Context) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.MenuItem{}, s.Items...), nil
}

// Add appends item with the next identifier.
func (s *MenuRepositoryStub) Add(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	item.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, item)
	return &item, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn      func(context.Context, model.Order) (*model.Order, error)
	ListByDinerFn func(context.Context, int64, int, int) ([]model.Order, error)

	Created []model.Order
	Orders  []model.Order
	Listed  []OrderListCall
}

// OrderListCall records ListByDiner arguments.
type OrderListCall struct {
	DinerID int64
	Limit   int
	Offset  int
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = int64(len(s.Created))
	for i := range order.Items {
		order.Items[i].ID = int64(i + 1)
	}
	return &order, nil
}

// ListByDiner returns orders from configured slice.
func (s *OrderRepositoryStub) ListByDiner(ctx context.Context, dinerID int64, limit, offset int) ([]model.Order, error) {
	s.Listed = append(s.Listed, OrderListCall{DinerID: dinerID, Limit: limit, Offset: offset})
	if s.ListByDinerFn != nil {
		return s.ListByDinerFn(ctx, dinerID, limit, offset)
	}
	return s.Orders, nil
}

// FulfillerStub records orders handed to the factory.
type FulfillerStub struct {
	FulfillFn func(context.Context, model.User, model.Order) (*model.Fulfillment, error)
	Calls     []model.Order
}

// Fulfill delegates to FulfillFn or returns a fixed fulfillment.
func (s *FulfillerStub) Fulfill(ctx context.Context, diner model.User, order model.Order) (*model.Fulfillment, error) {
	s.Calls = append(s.Calls, order)
	if s.FulfillFn != nil {
		return s.FulfillFn(ctx, diner, order)
	}
	return &model.Fulfillment{JWT: "pizza", ReportURL: "https://factory/report"}, nil
}

var (
	_ repository.UserRepository      = (*UserRepositoryStub)(nil)
	_ repository.TokenRepository     = (*TokenRepositoryStub)(nil)
	_ repository.FranchiseRepository = (*FranchiseRepositoryStub)(nil)
	_ repository.MenuRepository      = (*MenuRepositoryStub)(nil)
	_ repository.OrderRepository     = (*OrderRepositoryStub)(nil)
	_ repository.Fulfiller           = (*FulfillerStub)(nil)
)
