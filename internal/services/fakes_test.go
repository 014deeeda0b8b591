package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkravets/devfolio/internal/models"
	"github.com/mkravets/devfolio/internal/utils"
)

// In-memory repositories mirroring the store-level contracts: unique email,
// unique user/handle, prepend ordering, pull-by-id.

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[primitive.ObjectID]*models.Profile // keyed by owning user
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[primitive.ObjectID]*models.Profile{}}
}

func cloneProfile(p *models.Profile) *models.Profile {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Experience = append([]models.Experience(nil), p.Experience...)
	cp.Education = append([]models.Education(nil), p.Education...)
	cp.User = nil
	return &cp
}

func (r *memProfileRepo) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return cloneProfile(p), nil
}

func (r *memProfileRepo) FindByHandle(_ context.Context, handle string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Handle == handle {
			return cloneProfile(p), nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memProfileRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.ID == id {
			return cloneProfile(p), nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memProfileRepo) FindAll(_ context.Context) ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Profile{}
	for _, p := range r.profiles {
		out = append(out, *cloneProfile(p))
	}
	return out, nil
}

func (r *memProfileRepo) Create(_ context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.UserID]; ok {
		return utils.ErrDuplicate
	}
	for _, existing := range r.profiles {
		if p.Handle != "" && existing.Handle == p.Handle {
			return utils.ErrDuplicate
		}
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.profiles[p.UserID] = cloneProfile(p)
	return nil
}

func (r *memProfileRepo) UpdateByUser(_ context.Context, userID primitive.ObjectID, patch models.ProfilePatch) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	if patch.Handle != "" {
		p.Handle = patch.Handle
	}
	if patch.Company != "" {
		p.Company = patch.Company
	}
	if patch.Website != "" {
		p.Website = patch.Website
	}
	if patch.Location != "" {
		p.Location = patch.Location
	}
	if patch.Bio != "" {
		p.Bio = patch.Bio
	}
	if patch.Status != "" {
		p.Status = patch.Status
	}
	if patch.GithubUsername != "" {
		p.GithubUsername = patch.GithubUsername
	}
	if patch.Skills != nil {
		p.Skills = append([]string(nil), patch.Skills...)
	}
	if !patch.Social.IsZero() {
		p.Social = patch.Social
	}
	p.UpdatedAt = time.Now().UTC()
	return cloneProfile(p), nil
}

func (r *memProfileRepo) AddExperience(_ context.Context, userID primitive.ObjectID, exp models.Experience) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	p.Experience = append([]models.Experience{exp}, p.Experience...)
	return cloneProfile(p), nil
}

func (r *memProfileRepo) AddEducation(_ context.Context, userID primitive.ObjectID, edu models.Education) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	p.Education = append([]models.Education{edu}, p.Education...)
	return cloneProfile(p), nil
}

func (r *memProfileRepo) RemoveExperience(_ context.Context, userID, expID primitive.ObjectID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	out := p.Experience[:0]
	removed := false
	for _, e := range p.Experience {
		if !removed && e.ID == expID {
			removed = true
			continue
		}
		out = append(out, e)
	}
	p.Experience = out
	return cloneProfile(p), nil
}

func (r *memProfileRepo) RemoveEducation(_ context.Context, userID, eduID primitive.ObjectID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	out := p.Education[:0]
	removed := false
	for _, e := range p.Education {
		if !removed && e.ID == eduID {
			removed = true
			continue
		}
		out = append(out, e)
	}
	p.Education = out
	return cloneProfile(p), nil
}

func (r *memProfileRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, userID)
	return nil
}
