package store

import (
	"context"
	"time"

	"github.com/revisaai/revisaai/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(pw string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// MemoryUserStore keeps accounts in process memory with bcrypt hashed passwords.
type MemoryUserStore struct {
	c    *collection[models.User]
	cost int
	now  func() time.Time
}

// SeedUser is an account to preload, with its clear-text password.
type SeedUser struct {
	User     models.User
	Password string
}

func NewMemoryUserStore(seed []SeedUser, opts ...Option) (*MemoryUserStore, error) {
	o := buildOptions(opts)
	users := make([]models.User, 0, len(seed))
	for _, su := range seed {
		h, err := hashPassword(su.Password, o.passwordCost)
		if err != nil {
			return nil, err
		}
		u := su.User
		u.Email = models.NormalizeEmail(u.Email)
		u.PasswordHash = h
		users = append(users, u)
	}
	return &MemoryUserStore{
		c:    newCollection(func(u models.User) string { return u.ID }, o.latency, users),
		cost: o.passwordCost,
		now:  o.now,
	}, nil
}

func emailTaken(items []models.User, email, exceptID string) bool {
	for _, u := range items {
		if u.ID != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (s *MemoryUserStore) List(ctx context.Context) ([]models.User, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	users := s.c.list()
	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

func (s *MemoryUserStore) Get(ctx context.Context, id string) (models.User, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.User{}, err
	}
	u, ok := s.c.find(func(u models.User) bool { return u.ID == id })
	if !ok {
		return models.User{}, &models.NotFoundError{Resource: "user", ID: id}
	}
	return u.Public(), nil
}

func (s *MemoryUserStore) Register(ctx context.Context, in models.RegisterInput) (models.User, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.User{}, err
	}
	in.Normalize()
	hash, err := hashPassword(in.Password, s.cost)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.c.insert(
		func(items []models.User) error {
			if emailTaken(items, in.Email, "") {
				return &models.AlreadyExistsError{Resource: "user", Field: "email", Value: in.Email}
			}
			return nil
		},
		func(id string) models.User {
			now := s.now()
			return models.User{ID: id, Name: in.Name, Email: in.Email, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
		},
	)
	if err != nil {
		return models.User{}, err
	}
	return u.Public(), nil
}

// Authenticate matches the email case-insensitively.
func (s *MemoryUserStore) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.User{}, err
	}
	email = models.NormalizeEmail(email)
	u, ok := s.c.find(func(u models.User) bool { return u.Email == email })
	if !ok || !checkPassword(u.PasswordHash, password) {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u.Public(), nil
}

func (s *MemoryUserStore) Update(ctx context.Context, id string, in models.UpdateProfileInput) (models.User, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.User{}, err
	}
	var hash string
	if in.Password != nil {
		h, err := hashPassword(*in.Password, s.cost)
		if err != nil {
			return models.User{}, err
		}
		hash = h
	}
	u, ok, err := s.c.update(id, func(cur models.User, items []models.User) (models.User, error) {
		if in.Email != nil {
			email := models.NormalizeEmail(*in.Email)
			if emailTaken(items, email, id) {
				return cur, &models.AlreadyExistsError{Resource: "user", Field: "email", Value: email}
			}
			cur.Email = email
		}
		if in.Name != nil {
			cur.Name = *in.Name
		}
		if in.AvatarURL != nil {
			cur.AvatarURL = *in.AvatarURL
		}
		if hash != "" {
			cur.PasswordHash = hash
		}
		cur.UpdatedAt = s.now()
		return cur, nil
	})
	if !ok {
		return models.User{}, &models.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return models.User{}, err
	}
	return u.Public(), nil
}

func (s *MemoryUserStore) Delete(ctx context.Context, id string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(u models.User) bool { return u.ID == id })
	return nil
}

// Len reports how many accounts exist.
func (s *MemoryUserStore) Len() int { return s.c.size() }
