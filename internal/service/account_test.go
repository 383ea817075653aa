package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/mocks"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/password"
	blobs "github.com/dtroode/gophfeed-server/internal/storage/memory"
	"github.com/dtroode/gophfeed-server/internal/testutil"
	"github.com/dtroode/gophfeed-server/internal/token"
)

func newAccount(f *fixture) *Account {
	log := testutil.MakeNoopLogger()
	session := NewSession(token.NewJWT("secret"), f.users, log)
	return NewAccount(f.users, f.posts, blobs.New(), password.NewBcrypt(4), session, log)
}

func TestAccount_SignUpAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newAccount(f)

	user, tok, err := s.SignUp(ctx, model.SignUpParams{Name: " Ann ", Email: " Ann@Example.COM ", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, []string{tok}, user.Tokens)
	assert.NotEqual(t, "password1", user.PasswordHash)

	_, _, err = s.SignUp(ctx, model.SignUpParams{Name: "other", Email: "ann@example.com", Password: "password1"})
	assert.ErrorIs(t, err, model.ErrConflict)

	again, second, err := s.Login(ctx, "ANN@example.com", "password1")
	require.NoError(t, err)
	assert.NotEqual(t, tok, second)
	assert.Equal(t, []string{tok, second}, again.Tokens)

	_, _, err = s.Login(ctx, "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, _, err = s.Login(ctx, "nobody@example.com", "password1")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAccount_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params model.SignUpParams
	}{
		{name: "short password", params: model.SignUpParams{Name: "a", Email: "a@example.com", Password: "short"}},
		{name: "bad email", params: model.SignUpParams{Name: "a", Email: "not-an-email", Password: "password1"}},
		{name: "blank name", params: model.SignUpParams{Name: "  ", Email: "a@example.com", Password: "password1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newAccount(newFixture(t))
			_, _, err := s.SignUp(context.Background(), tt.params)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestAccount_UpdateProfile_RejectsUnknownField(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.user(t, "ann")
	s := newAccount(f)

	_, err := s.UpdateProfile(ctx, user, map[string]any{"name": "x", "role": "admin"})
	assert.ErrorIs(t, err, model.ErrInvalidUpdate)

	assert.Equal(t, user, f.reloadUser(t, user.ID))
}

func TestAccount_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.user(t, "ann")
	f.user(t, "bob")
	s := newAccount(f)

	updated, err := s.UpdateProfile(ctx, user, map[string]any{"name": "Anna", "email": "ANNA@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "anna", updated.Name)
	assert.Equal(t, "anna@example.com", updated.Email)

	_, err = s.UpdateProfile(ctx, updated, map[string]any{"email": "bob@example.com"})
	assert.ErrorIs(t, err, model.ErrConflict)

	_, err = s.UpdateProfile(ctx, updated, map[string]any{"email": "broken"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.UpdateProfile(ctx, updated, map[string]any{"name": 42})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.UpdateProfile(ctx, updated, map[string]any{"avatar": "not bytes"})
	assert.ErrorIs(t, err, model.ErrValidation)

	withAvatar, err := s.UpdateProfile(ctx, updated, map[string]any{"avatar": pngImage})
	require.NoError(t, err)
	assert.NotEmpty(t, withAvatar.AvatarKey)

	blob, err := s.GetAvatar(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, blob.Body.Close())
	assert.Equal(t, "image/png", blob.ContentType)

	cleared, err := s.DeleteAvatar(ctx, withAvatar)
	require.NoError(t, err)
	assert.Empty(t, cleared.AvatarKey)

	_, err = s.GetAvatar(ctx, user.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAccount_UpdateProfile_RejectedUpdateKeepsAvatar(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ann, bob := f.user(t, "ann"), f.user(t, "bob")
	storage := blobs.New()
	log := testutil.MakeNoopLogger()
	s := NewAccount(f.users, f.posts, storage, password.NewBcrypt(4), NewSession(token.NewJWT("secret"), f.users, log), log)

	first := pngWith("first")
	ann, err := s.SetAvatar(ctx, ann, first)
	require.NoError(t, err)
	firstKey := ann.AvatarKey

	_, err = s.UpdateProfile(ctx, ann, map[string]any{"email": bob.Email, "avatar": pngWith("second")})
	require.ErrorIs(t, err, model.ErrConflict)

	assert.Equal(t, firstKey, f.reloadUser(t, ann.ID).AvatarKey)
	assert.Equal(t, first, readAvatar(t, s, ann.ID))

	replaced, err := s.SetAvatar(ctx, ann, pngWith("third"))
	require.NoError(t, err)
	assert.NotEqual(t, firstKey, replaced.AvatarKey)
	assert.Equal(t, pngWith("third"), readAvatar(t, s, ann.ID))

	_, err = storage.Download(ctx, firstKey)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAccount_UpdateProfile_FailedWriteRemovesNewAvatar(t *testing.T) {
	user := model.User{ID: uuid.New(), Name: "ann", Email: "ann@example.com", AvatarKey: "avatars/old"}

	us := mocks.NewUserStore(t)
	st := mocks.NewStorage(t)

	var uploaded string
	var removed []string
	st.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, int64(len(pngImage)), "image/png").
		Run(func(args mock.Arguments) { uploaded = args.String(1) }).
		Return(nil)
	st.On("Delete", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { removed = append(removed, args.String(1)) }).
		Return(nil)
	us.On("Update", mock.Anything, mock.Anything).Return(model.User{}, errors.New("db down"))

	log := testutil.MakeNoopLogger()
	s := NewAccount(us, mocks.NewPostStore(t), st, mocks.NewPasswordHasher(t), NewSession(mocks.NewTokenManager(t), us, log), log)

	_, err := s.SetAvatar(context.Background(), user, pngImage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update profile")

	assert.NotEqual(t, user.AvatarKey, uploaded)
	assert.Equal(t, []string{uploaded}, removed)
}

func TestAccount_SetAbout(t *testing.T) {
	f := newFixture(t)
	user := f.user(t, "ann")
	s := newAccount(f)

	updated, err := s.SetAbout(context.Background(), user, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.About)
}

func TestAccount_Search(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "anna")
	f.user(t, "joanne")
	f.user(t, "bob")
	s := newAccount(f)

	_, err := s.Search(ctx, "  ", 0, 0)
	assert.ErrorIs(t, err, model.ErrNotFound)

	users, err := s.Search(ctx, "ANN", 0, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "anna", users[0].Name)
	assert.Equal(t, "joanne", users[1].Name)

	users, err = s.Search(ctx, "ann", 1, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "joanne", users[0].Name)
}

func TestAccount_DeleteUser_CascadesPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner, fan := f.user(t, "owner"), f.user(t, "fan")
	p1, p2 := f.post(t, owner), f.post(t, owner)
	likes := NewLike(f.users, f.posts, testutil.MakeNoopLogger())
	fan, err := likes.SetLike(ctx, fan, p1.ID, true)
	require.NoError(t, err)
	s := newAccount(f)

	deleted, err := s.DeleteUser(ctx, f.reloadUser(t, owner.ID))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, deleted.ID)

	for _, id := range []uuid.UUID{p1.ID, p2.ID} {
		_, err := f.posts.GetByID(ctx, id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	}
	_, err = s.GetUser(ctx, owner.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// No fan-out: the fan's ledger keeps the stale id until it is read.
	assert.Equal(t, []uuid.UUID{p1.ID}, f.reloadUser(t, fan.ID).Liked)
	posts, fan, err := likes.LikedPosts(ctx, fan)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Empty(t, fan.Liked)
}

func TestAccount_DeleteUser_Failures(t *testing.T) {
	user := model.User{ID: uuid.New(), AvatarKey: "avatars/1"}

	tests := []struct {
		name      string
		mockSetup func(*mocks.UserStore, *mocks.PostStore, *mocks.Storage)
		wantErr   string
	}{
		{
			name: "posts delete fails keeps user",
			mockSetup: func(us *mocks.UserStore, ps *mocks.PostStore, _ *mocks.Storage) {
				ps.On("DeleteByOwner", mock.Anything, user.ID).Return(nil, errors.New("db down"))
			},
			wantErr: "failed to delete user posts",
		},
		{
			name: "user delete fails after posts",
			mockSetup: func(us *mocks.UserStore, ps *mocks.PostStore, _ *mocks.Storage) {
				ps.On("DeleteByOwner", mock.Anything, user.ID).Return([]model.Post{{ID: uuid.New()}}, nil)
				us.On("Delete", mock.Anything, user.ID).Return(errors.New("db down"))
			},
			wantErr: "failed to delete user",
		},
		{
			name: "blob removal failure is ignored",
			mockSetup: func(us *mocks.UserStore, ps *mocks.PostStore, st *mocks.Storage) {
				ps.On("DeleteByOwner", mock.Anything, user.ID).Return([]model.Post{{ID: uuid.New(), PictureKey: "posts/1"}}, nil)
				us.On("Delete", mock.Anything, user.ID).Return(nil)
				st.On("Delete", mock.Anything, "avatars/1").Return(errors.New("s3 down"))
				st.On("Delete", mock.Anything, "posts/1").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			us := mocks.NewUserStore(t)
			ps := mocks.NewPostStore(t)
			st := mocks.NewStorage(t)
			tt.mockSetup(us, ps, st)

			log := testutil.MakeNoopLogger()
			s := NewAccount(us, ps, st, mocks.NewPasswordHasher(t), NewSession(mocks.NewTokenManager(t), us, log), log)
			_, err := s.DeleteUser(context.Background(), user)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func pngWith(tag string) []byte {
	return append(append([]byte{}, pngImage...), tag...)
}

func readAvatar(t *testing.T, s *Account, userID uuid.UUID) []byte {
	t.Helper()
	blob, err := s.GetAvatar(context.Background(), userID)
	require.NoError(t, err)
	defer blob.Body.Close()
	data, err := io.ReadAll(blob.Body)
	require.NoError(t, err)
	return data
}
