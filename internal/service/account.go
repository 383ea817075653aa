package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/validation"
)

// Account owns the user document lifecycle: sign-up, login, profile changes and deletion.
type Account struct {
	userStore model.UserStore
	postStore model.PostStore
	storage   model.Storage
	hasher    model.PasswordHasher
	session   *Session
	logger    *logger.Logger
}

func NewAccount(
	userStore model.UserStore,
	postStore model.PostStore,
	storage model.Storage,
	hasher model.PasswordHasher,
	session *Session,
	logger *logger.Logger,
) *Account {
	return &Account{
		userStore: userStore,
		postStore: postStore,
		storage:   storage,
		hasher:    hasher,
		session:   session,
		logger:    logger,
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers an account and opens its first session.
func (s *Account) SignUp(ctx context.Context, params model.SignUpParams) (model.User, string, error) {
	if err := validation.Struct(params); err != nil {
		return model.User{}, "", err
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         normalizeName(params.Name),
		Email:        normalizeEmail(params.Email),
		PasswordHash: hash,
	})
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, user, err := s.session.Issue(ctx, user)
	if err != nil {
		return model.User{}, "", err
	}

	s.logger.Info("Account service: user signed up",
		"user_id", user.ID)

	return user, token, nil
}

// Login opens a new session. Unknown email and wrong password are both ErrUnauthorized.
func (s *Account) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", model.ErrUnauthorized
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		s.logger.Debug("Account service: password mismatch",
			"user_id", user.ID)
		return model.User{}, "", model.ErrUnauthorized
	}

	token, user, err := s.session.Issue(ctx, user)
	if err != nil {
		return model.User{}, "", err
	}

	return user, token, nil
}

func (s *Account) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Search finds users by case-insensitive name substring. An empty name matches nothing.
func (s *Account) Search(ctx context.Context, name string, limit, skip int) ([]model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNotFound
	}
	if skip < 0 {
		skip = 0
	}

	users, err := s.userStore.Search(ctx, name, model.PageSize(limit), skip)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (s *Account) SetAbout(ctx context.Context, user model.User, about string) (model.User, error) {
	user.About = strings.TrimSpace(about)

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update about: %w", err)
	}
	return updated, nil
}

// UpdateProfile applies fields keyed by model.ProfileFields. Any other key rejects the
// whole update with ErrInvalidUpdate. The avatar value is raw image bytes or nil to clear it.
func (s *Account) UpdateProfile(ctx context.Context, user model.User, fields map[string]any) (model.User, error) {
	for key := range fields {
		if !slices.Contains(model.ProfileFields, key) {
			return model.User{}, fmt.Errorf("%w: %s", model.ErrInvalidUpdate, key)
		}
	}

	next := user
	var avatar []byte
	clearAvatar := false
	for key, value := range fields {
		switch key {
		case model.ProfileFieldName:
			name, ok := value.(string)
			if !ok {
				return model.User{}, fmt.Errorf("%w: name must be a string", model.ErrValidation)
			}
			next.Name = normalizeName(name)
		case model.ProfileFieldEmail:
			email, ok := value.(string)
			if !ok {
				return model.User{}, fmt.Errorf("%w: email must be a string", model.ErrValidation)
			}
			next.Email = normalizeEmail(email)
		case model.ProfileFieldAvatar:
			switch v := value.(type) {
			case nil:
				clearAvatar = true
			case []byte:
				if v == nil {
					clearAvatar = true
					break
				}
				if _, err := sniffImage(v); err != nil {
					return model.User{}, err
				}
				avatar = v
			default:
				return model.User{}, fmt.Errorf("%w: avatar must be image bytes", model.ErrValidation)
			}
		}
	}

	if avatar != nil {
		next.AvatarKey = avatarKey(user.ID)
		if err := uploadImage(ctx, s.storage, next.AvatarKey, avatar); err != nil {
			return model.User{}, err
		}
	}
	if clearAvatar {
		next.AvatarKey = ""
	}

	updated, err := s.userStore.Update(ctx, next)
	if err != nil {
		if avatar != nil {
			removeBlobs(ctx, s.storage, s.logger, next.AvatarKey)
		}
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	if user.AvatarKey != next.AvatarKey {
		removeBlobs(ctx, s.storage, s.logger, user.AvatarKey)
	}

	s.logger.Info("Account service: profile updated",
		"user_id", user.ID,
		"fields", len(fields))

	return updated, nil
}

func (s *Account) SetAvatar(ctx context.Context, user model.User, data []byte) (model.User, error) {
	return s.UpdateProfile(ctx, user, map[string]any{model.ProfileFieldAvatar: data})
}

func (s *Account) DeleteAvatar(ctx context.Context, user model.User) (model.User, error) {
	return s.UpdateProfile(ctx, user, map[string]any{model.ProfileFieldAvatar: nil})
}

func (s *Account) GetAvatar(ctx context.Context, userID uuid.UUID) (model.Blob, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.Blob{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user.AvatarKey == "" {
		return model.Blob{}, model.ErrNotFound
	}

	blob, err := s.storage.Download(ctx, user.AvatarKey)
	if err != nil {
		return model.Blob{}, fmt.Errorf("failed to download avatar: %w", err)
	}
	return blob, nil
}

// DeleteUser removes every post of user and then the user itself. Likes held by other
// users on those posts are left dangling and resolved lazily. If the posts cannot be
// removed the user is kept.
func (s *Account) DeleteUser(ctx context.Context, user model.User) (model.User, error) {
	posts, err := s.postStore.DeleteByOwner(ctx, user.ID)
	if err != nil {
		s.logger.Error("Account service: failed to delete user posts",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to delete user posts: %w", err)
	}

	if err := s.userStore.Delete(ctx, user.ID); err != nil {
		s.logger.Error("Account service: posts deleted but user kept",
			"user_id", user.ID,
			"deleted_posts", len(posts),
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	keys := make([]string, 0, len(posts)+1)
	keys = append(keys, user.AvatarKey)
	for _, p := range posts {
		keys = append(keys, p.PictureKey)
	}
	removeBlobs(ctx, s.storage, s.logger, keys...)

	s.logger.Info("Account service: user deleted",
		"user_id", user.ID,
		"deleted_posts", len(posts))

	return user, nil
}
