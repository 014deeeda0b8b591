package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkravets/devfolio/internal/models"
	mongorepo "github.com/mkravets/devfolio/internal/repositories/mongo"
	"github.com/mkravets/devfolio/internal/token"
	"github.com/mkravets/devfolio/internal/utils"
	"github.com/mkravets/devfolio/internal/validation"
)

// CurrentUser is the identity view returned by the current-user endpoint.
type CurrentUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthService interface {
	Register(ctx context.Context, in validation.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in validation.LoginInput) (bearer string, err error)
	Current(ctx context.Context, userID string) (*CurrentUser, error)
}

type authService struct {
	users  mongorepo.UserRepository
	signer *token.Signer
}

func NewAuthService(users mongorepo.UserRepository, signer *token.Signer) AuthService {
	return &authService{users: users, signer: signer}
}

// Register creates the credential: gravatar derived from the email, password
// bcrypt-hashed before it ever touches the store.
func (s *authService) Register(ctx context.Context, in validation.RegisterInput) (*models.User, error) {
	const op = "AuthService.Register"

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, utils.EF(utils.CodeInvalidArgument, op, "email", "Email already exists")
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Avatar:   utils.GravatarURL(in.Email),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// unique index catches the race past the pre-check
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.EF(utils.CodeInvalidArgument, op, "email", "Email already exists")
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

// Login verifies email and password and issues a bearer token carrying
// {id, name, avatar}. The two failure modes stay distinguishable: unknown
// email is a 404, bad password a 400.
func (s *authService) Login(ctx context.Context, in validation.LoginInput) (string, error) {
	const op = "AuthService.Login"

	u, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.EF(utils.CodeNotFound, op, "email", "User not found")
		}
		return "", utils.E(utils.CodeInternal, op, "failed to find user", err)
	}

	if err := utils.CheckPassword(u.Password, in.Password); err != nil {
		return "", utils.EF(utils.CodeInvalidArgument, op, "password", "Password is incorrect")
	}

	t, err := s.signer.Sign(u.ID.Hex(), u.Name, u.Avatar)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return "Bearer " + t, nil
}

func (s *authService) Current(ctx context.Context, userID string) (*CurrentUser, error) {
	const op = "AuthService.Current"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	u, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to find user", err)
	}
	return &CurrentUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}, nil
}
