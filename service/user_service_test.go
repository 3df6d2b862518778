package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebook/dao"
	"recipebook/internal/auth"
	"recipebook/internal/validator"
	"recipebook/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Recipe{}))
	return db
}

func newTestUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := auth.NewSessionManager(rdb, time.Hour)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(dao.NewUserDAO(db), sessions, tokens), db
}

func TestSignup(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, SignupInput{Username: "ann", Password: "pw123"})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "ann", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "pw123", user.PasswordHash)

	// The returned token resolves back to the new user's session.
	sid, err := svc.Tokens.Parse(token)
	require.NoError(t, err)
	userID, err := svc.Session.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, _, err := svc.Signup(context.Background(), SignupInput{Username: "ann"})
	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Username and password are required", verr.Message)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, SignupInput{Username: "bob", Password: "pw123"})
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, SignupInput{Username: "bob", Password: "other"})
	assert.ErrorIs(t, err, ErrUserExists)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "bob").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, SignupInput{Username: "ann", Password: "pw123"})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "ann", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)
	assert.NotEmpty(t, token)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, SignupInput{Username: "ann", Password: "pw123"})
	require.NoError(t, err)

	// Unknown user and wrong password fail identically.
	_, _, err = svc.Login(ctx, "nobody", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ann", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, _, err := svc.Login(context.Background(), "", "")
	var verr *validator.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCurrentUser(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, SignupInput{Username: "ann", Password: "pw123"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)

	// Session survives but the account is gone.
	require.NoError(t, db.Delete(&model.User{}, created.ID).Error)
	_, err = svc.CurrentUser(created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, SignupInput{Username: "ann", Password: "pw123"})
	require.NoError(t, err)

	sid, err := svc.Tokens.Parse(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sid))

	_, err = svc.Session.Get(ctx, sid)
	assert.ErrorIs(t, err, auth.ErrNoSession)
}
