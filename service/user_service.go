package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebook/dao"
	"recipebook/internal/auth"
	"recipebook/internal/validator"
	"recipebook/model"
	"recipebook/utils"
)

var (
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown username and a password
	// mismatch so the response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// SignupInput carries the signup fields into the service layer.
type SignupInput struct {
	Username string
	Password string
	Bio      string
	ImageURL string
}

// UserService bundles the DAO, session storage and cookie signing.
type UserService struct {
	dao     *dao.UserDAO
	Session *auth.SessionManager
	Tokens  *auth.TokenManager
}

// NewUserService creates a new UserService instance.
func NewUserService(dao *dao.UserDAO, session *auth.SessionManager, tokens *auth.TokenManager) *UserService {
	return &UserService{dao: dao, Session: session, Tokens: tokens}
}

// Signup validates the candidate, pre-checks username uniqueness, hashes
// the password and persists the user, then opens a session. The unique
// index remains the authority when two signups race past the pre-check.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*model.User, string, error) {
	if err := validator.ValidateUser(validator.UserCandidate{
		Username: in.Username,
		Password: in.Password,
	}); err != nil {
		return nil, "", err
	}

	if _, err := s.dao.GetByUsername(in.Username); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     in.Username,
		PasswordHash: hashed,
		Bio:          in.Bio,
		ImageURL:     in.ImageURL,
	}
	if err := s.dao.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by username and password and opens a session.
// Every failure path returns the same generic error.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if err := validator.ValidateUser(validator.UserCandidate{
		Username: username,
		Password: password,
	}); err != nil {
		return nil, "", err
	}

	user, err := s.dao.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CurrentUser resolves a session's user id to the stored account.
func (s *UserService) CurrentUser(id uint64) (*model.User, error) {
	user, err := s.dao.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout removes the server-side session; the cleared cookie cannot be
// replayed afterwards.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	return s.Session.Clear(ctx, sessionID)
}

func (s *UserService) openSession(ctx context.Context, userID uint64) (string, error) {
	sessionID := uuid.NewString()
	if err := s.Session.Set(ctx, sessionID, userID); err != nil {
		return "", err
	}
	return s.Tokens.Issue(sessionID)
}
