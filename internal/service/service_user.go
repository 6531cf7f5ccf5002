// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// unusablePassword is stored for accounts created without a password. It is
// not a bcrypt digest, so no input ever matches it.
const unusablePassword = "!"

// userService is the concrete implementation of UserService.
type userService struct {
	// userRepository persists accounts. Email uniqueness is enforced there.
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService over userRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser creates an active, non-staff account unless in says otherwise.
//
// The email is normalized and the password hashed before anything is stored.
// Returns a *validators.ValidationError when the email is empty or already
// registered.
func (u *userService) CreateUser(ctx context.Context, in models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userService.CreateUser").Logger()

	email := NormalizeEmail(in.Email)
	if email == "" {
		return models.User{}, validators.NewValidationError(validators.FieldEmail, validators.MsgEmailMissing)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: hash,
		IsActive:     boolOr(in.IsActive, true),
		IsStaff:      boolOr(in.IsStaff, false),
		IsSuperuser:  boolOr(in.IsSuperuser, false),
	}

	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", email).Msg("email already registered")
			return models.User{}, validators.NewValidationError(validators.FieldEmail, validators.MsgEmailTaken)
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.UserID).Msg("user created")
	return created, nil
}

func (u *userService) CreateSuperuser(ctx context.Context, in models.UserCreate) (models.User, error) {
	ve := &validators.ValidationError{}
	if in.IsStaff != nil && !*in.IsStaff {
		ve.Add(validators.FieldIsStaff, "Superuser must have is_staff=True.")
	}
	if in.IsSuperuser != nil && !*in.IsSuperuser {
		ve.Add(validators.FieldIsSuperuser, "Superuser must have is_superuser=True.")
	}
	if err := ve.OrNil(); err != nil {
		return models.User{}, err
	}

	yes := true
	in.IsStaff, in.IsSuperuser = &yes, &yes

	return u.CreateUser(ctx, in)
}

func (u *userService) CheckPassword(user models.User, password string) bool {
	return utils.CheckPassword(user.PasswordHash, password)
}

func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapUserErr(err)
	}
	return user, nil
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// UpdateProfile changes the caller's name and/or password. The email is
// never touched here.
func (u *userService) UpdateProfile(ctx context.Context, user models.User, upd models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	changes := models.UserChanges{Name: upd.Name}
	if upd.Password != nil {
		hash, err := hashPassword(*upd.Password)
		if err != nil {
			return models.User{}, err
		}
		changes.PasswordHash = &hash
	}

	updated, err := u.userRepository.UpdateUser(ctx, user.UserID, changes)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Int64("id", user.UserID).Msg("profile update failed")
		return models.User{}, mapUserErr(err)
	}

	return updated, nil
}

func (u *userService) AdminCreateUser(ctx context.Context, actor models.User, in models.UserCreate) (models.User, error) {
	if !actor.IsStaff {
		return models.User{}, ErrUserNotFound
	}
	if !actor.IsSuperuser {
		ve := &validators.ValidationError{}
		if boolOr(in.IsStaff, false) {
			ve.Add(validators.FieldIsStaff, validators.MsgSuperuserFlags)
		}
		if boolOr(in.IsSuperuser, false) {
			ve.Add(validators.FieldIsSuperuser, validators.MsgSuperuserFlags)
		}
		if err := ve.OrNil(); err != nil {
			return models.User{}, err
		}
	}

	return u.CreateUser(ctx, in)
}

// AdminUpdateUser lets staff change a user's name and active flag. Changing
// is_staff or is_superuser to a different value requires a superuser actor.
func (u *userService) AdminUpdateUser(ctx context.Context, actor models.User, userID int64, upd models.AdminUserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !actor.IsStaff {
		return models.User{}, ErrUserNotFound
	}

	target, err := u.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if !actor.IsSuperuser {
		ve := &validators.ValidationError{}
		if upd.IsStaff != nil && *upd.IsStaff != target.IsStaff {
			ve.Add(validators.FieldIsStaff, validators.MsgSuperuserFlags)
		}
		if upd.IsSuperuser != nil && *upd.IsSuperuser != target.IsSuperuser {
			ve.Add(validators.FieldIsSuperuser, validators.MsgSuperuserFlags)
		}
		if err = ve.OrNil(); err != nil {
			return models.User{}, err
		}
	}

	updated, err := u.userRepository.UpdateUser(ctx, userID, models.UserChanges{
		Name:        upd.Name,
		IsActive:    upd.IsActive,
		IsStaff:     upd.IsStaff,
		IsSuperuser: upd.IsSuperuser,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userService.AdminUpdateUser").
			Int64("actor", actor.UserID).
			Int64("id", userID).
			Msg("admin user update failed")
		return models.User{}, mapUserErr(err)
	}

	log.Info().Int64("actor", actor.UserID).Int64("id", userID).Msg("user updated by staff")
	return updated, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return unusablePassword, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		if utils.IsPasswordTooLong(err) {
			return "", validators.NewValidationError(validators.FieldPassword, "Ensure this field has no more than 72 bytes.")
		}
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return hash, nil
}

func mapUserErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	return err
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
