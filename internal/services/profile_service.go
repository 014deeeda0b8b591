package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkravets/devfolio/internal/cache"
	"github.com/mkravets/devfolio/internal/models"
	mongorepo "github.com/mkravets/devfolio/internal/repositories/mongo"
	"github.com/mkravets/devfolio/internal/utils"
	"github.com/mkravets/devfolio/internal/validation"
)

const (
	msgNoProfile  = "There is no profile for this user."
	msgNoProfiles = "There are no profiles."

	profileCacheTTL = time.Minute
)

type ProfileService interface {
	GetMine(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, in validation.ProfileInput) (*models.Profile, error)
	AddExperience(ctx context.Context, userID string, in validation.ExperienceInput) (*models.Profile, error)
	AddEducation(ctx context.Context, userID string, in validation.EducationInput) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type profileService struct {
	profiles mongorepo.ProfileRepository
	users    mongorepo.UserRepository
	cache    cache.Cache
}

func NewProfileService(profiles mongorepo.ProfileRepository, users mongorepo.UserRepository, c cache.Cache) ProfileService {
	return &profileService{profiles: profiles, users: users, cache: c}
}

func (s *profileService) GetMine(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.GetMine"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.FindByUser(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return s.populate(ctx, p), nil
}

// GetAll returns every profile, owner populated. An empty store is a 200
// with an empty list, not an error.
func (s *profileService) GetAll(ctx context.Context) ([]models.Profile, error) {
	const op = "ProfileService.GetAll"

	if s.cache != nil {
		var cached []models.Profile
		if hit, _ := s.cache.GetJSON(ctx, cache.KeyAllProfiles, &cached); hit {
			return cached, nil
		}
	}

	list, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, utils.EF(utils.CodeNotFound, op, "noprofiles", msgNoProfiles)
	}
	for i := range list {
		if p := s.populate(ctx, &list[i]); p != nil {
			list[i] = *p
		}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cache.KeyAllProfiles, list, profileCacheTTL)
	}
	return list, nil
}

func (s *profileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	const op = "ProfileService.GetByHandle"

	if s.cache != nil {
		var cached models.Profile
		if hit, _ := s.cache.GetJSON(ctx, cache.KeyHandle(handle), &cached); hit {
			return &cached, nil
		}
	}

	p, err := s.profiles.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	out := s.populate(ctx, p)

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cache.KeyHandle(handle), out, profileCacheTTL)
	}
	return out, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.GetByUserID"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// malformed ids look the same as absent profiles to the caller
		return nil, utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
	}

	p, err := s.profiles.FindByUser(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return s.populate(ctx, p), nil
}

// Save patches the caller's profile, or creates it on first submission.
// Handle uniqueness is checked against other owners before any write, and
// the unique index backs the check up under races.
func (s *profileService) Save(ctx context.Context, userID string, in validation.ProfileInput) (*models.Profile, error) {
	const op = "ProfileService.Save"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	patch := patchFromInput(in)

	if patch.Handle != "" {
		if other, err := s.profiles.FindByHandle(ctx, patch.Handle); err == nil && other.UserID != oid {
			return nil, utils.EF(utils.CodeInvalidArgument, op, "handle", "That handle already exists")
		} else if err != nil && !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to check handle", err)
		}
	}

	existing, err := s.profiles.FindByUser(ctx, oid)
	switch {
	case err == nil:
		updated, err := s.profiles.UpdateByUser(ctx, oid, patch)
		if err != nil {
			if errors.Is(err, utils.ErrDuplicate) {
				return nil, utils.EF(utils.CodeInvalidArgument, op, "handle", "That handle already exists")
			}
			return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
		}
		s.invalidate(ctx, existing.Handle, updated.Handle)
		return s.populate(ctx, updated), nil

	case errors.Is(err, utils.ErrNotFound):
		p := patch.NewProfile(oid, time.Now().UTC())
		if err := s.profiles.Create(ctx, p); err != nil {
			if errors.Is(err, utils.ErrDuplicate) {
				return nil, utils.EF(utils.CodeInvalidArgument, op, "handle", "That handle already exists")
			}
			return nil, utils.E(utils.CodeInternal, op, "failed to create profile", err)
		}
		s.invalidate(ctx, p.Handle)
		return s.populate(ctx, p), nil

	default:
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
}

func (s *profileService) AddExperience(ctx context.Context, userID string, in validation.ExperienceInput) (*models.Profile, error) {
	const op = "ProfileService.AddExperience"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	exp := models.Experience{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p, err := s.profiles.AddExperience(ctx, oid, exp)
	if err != nil {
		return nil, s.mutationErr(op, err)
	}
	s.invalidate(ctx, p.Handle)
	return s.populate(ctx, p), nil
}

func (s *profileService) AddEducation(ctx context.Context, userID string, in validation.EducationInput) (*models.Profile, error) {
	const op = "ProfileService.AddEducation"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	edu := models.Education{
		ID:           primitive.NewObjectID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p, err := s.profiles.AddEducation(ctx, oid, edu)
	if err != nil {
		return nil, s.mutationErr(op, err)
	}
	s.invalidate(ctx, p.Handle)
	return s.populate(ctx, p), nil
}

func (s *profileService) RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	const op = "ProfileService.RemoveExperience"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}
	rid, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return nil, utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
	}

	p, err := s.profiles.RemoveExperience(ctx, oid, rid)
	if err != nil {
		return nil, s.mutationErr(op, err)
	}
	s.invalidate(ctx, p.Handle)
	return s.populate(ctx, p), nil
}

func (s *profileService) RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	const op = "ProfileService.RemoveEducation"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}
	rid, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return nil, utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
	}

	p, err := s.profiles.RemoveEducation(ctx, oid, rid)
	if err != nil {
		return nil, s.mutationErr(op, err)
	}
	s.invalidate(ctx, p.Handle)
	return s.populate(ctx, p), nil
}

// DeleteAccount cascades: profile first, then the credential itself.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	const op = "ProfileService.DeleteAccount"

	oid, err := parseUserID(op, userID)
	if err != nil {
		return err
	}

	if p, err := s.profiles.FindByUser(ctx, oid); err == nil {
		s.invalidate(ctx, p.Handle)
	}
	if err := s.profiles.DeleteByUser(ctx, oid); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete profile", err)
	}
	if err := s.users.DeleteByID(ctx, oid); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}

func (s *profileService) mutationErr(op string, err error) error {
	if errors.Is(err, utils.ErrNotFound) {
		return utils.EF(utils.CodeNotFound, op, "noprofile", msgNoProfile)
	}
	return utils.E(utils.CodeInternal, op, "failed to update profile", err)
}

// populate attaches the owning credential's public view, the way the
// original document joins name and avatar onto profile responses. A missing
// owner leaves the profile unpopulated rather than failing the read.
func (s *profileService) populate(ctx context.Context, p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	if u, err := s.users.FindByID(ctx, p.UserID); err == nil {
		p.User = u.Ref()
	}
	return p
}

func (s *profileService) invalidate(ctx context.Context, handles ...string) {
	if s.cache == nil {
		return
	}
	keys := []string{cache.KeyAllProfiles}
	for _, h := range handles {
		if h != "" {
			keys = append(keys, cache.KeyHandle(h))
		}
	}
	_ = s.cache.Del(ctx, keys...)
}

func parseUserID(op, userID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}
	return oid, nil
}

// patchFromInput maps a validated submission onto the optional-field patch.
// Skills arrives comma-separated and is split into an ordered list here,
// trimmed, empty segments dropped.
func patchFromInput(in validation.ProfileInput) models.ProfilePatch {
	p := models.ProfilePatch{
		Handle:         in.Handle,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		Status:         in.Status,
		GithubUsername: in.GithubUsername,
		Social: models.Social{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
		},
	}
	if in.Skills != "" {
		p.Skills = splitSkills(in.Skills)
	}
	return p
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
