package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkravets/devfolio/internal/models"
	"github.com/mkravets/devfolio/internal/utils"
	"github.com/mkravets/devfolio/internal/validation"
)

type profileFixture struct {
	svc      ProfileService
	users    *memUserRepo
	profiles *memProfileRepo
	owner    *models.User
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	users := newMemUserRepo()
	profiles := newMemProfileRepo()

	owner := &models.User{Name: "Ada", Email: "ada@example.com", Password: "x", Avatar: "a"}
	require.NoError(t, users.Create(context.Background(), owner))

	return &profileFixture{
		svc:      NewProfileService(profiles, users, nil),
		users:    users,
		profiles: profiles,
		owner:    owner,
	}
}

func profileInput() validation.ProfileInput {
	return validation.ProfileInput{
		Handle: "ada",
		Status: "Developer",
		Skills: "Go, SQL, Docker",
	}
}

func (f *profileFixture) ownerID() string { return f.owner.ID.Hex() }

func TestSaveCreatesProfile(t *testing.T) {
	f := newProfileFixture(t)

	p, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	assert.Equal(t, "ada", p.Handle)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, p.Skills)
	require.NotNil(t, p.User, "owner must be populated")
	assert.Equal(t, "Ada", p.User.Name)
}

func TestSavePatchSemantics(t *testing.T) {
	f := newProfileFixture(t)

	in := profileInput()
	in.Bio = "I write compilers"
	in.Location = "London"
	_, err := f.svc.Save(context.Background(), f.ownerID(), in)
	require.NoError(t, err)

	// second submission sets only company; everything else must survive
	patch := profileInput()
	patch.Company = "Acme"
	p, err := f.svc.Save(context.Background(), f.ownerID(), patch)
	require.NoError(t, err)

	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "I write compilers", p.Bio)
	assert.Equal(t, "London", p.Location)
}

func TestSaveHandleCollision(t *testing.T) {
	f := newProfileFixture(t)

	other := &models.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, f.users.Create(context.Background(), other))

	_, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	// same handle from a different owner must be rejected, not silently saved
	_, err = f.svc.Save(context.Background(), other.ID.Hex(), profileInput())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	var ae *utils.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "That handle already exists", ae.Fields["handle"])

	// re-submitting your own handle stays fine
	_, err = f.svc.Save(context.Background(), f.ownerID(), profileInput())
	assert.NoError(t, err)
}

func TestExperiencePrependOrdering(t *testing.T) {
	f := newProfileFixture(t)
	_, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	_, err = f.svc.AddExperience(context.Background(), f.ownerID(), validation.ExperienceInput{Title: "E1", Company: "Acme", From: "2019"})
	require.NoError(t, err)
	p, err := f.svc.AddExperience(context.Background(), f.ownerID(), validation.ExperienceInput{Title: "E2", Company: "Acme", From: "2021"})
	require.NoError(t, err)

	require.Len(t, p.Experience, 2)
	assert.Equal(t, "E2", p.Experience[0].Title, "newest entry sorts first")
	assert.Equal(t, "E1", p.Experience[1].Title)
}

func TestRemoveExperience(t *testing.T) {
	f := newProfileFixture(t)
	_, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	for _, title := range []string{"E1", "E2", "E3"} {
		_, err = f.svc.AddExperience(context.Background(), f.ownerID(), validation.ExperienceInput{Title: title, Company: "Acme", From: "2020"})
		require.NoError(t, err)
	}

	p, err := f.svc.GetMine(context.Background(), f.ownerID())
	require.NoError(t, err)
	middle := p.Experience[1] // E2

	p, err = f.svc.RemoveExperience(context.Background(), f.ownerID(), middle.ID.Hex())
	require.NoError(t, err)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, "E3", p.Experience[0].Title, "relative order of the rest is unchanged")
	assert.Equal(t, "E1", p.Experience[1].Title)

	// removing an id that no longer exists is a persisted no-op
	p, err = f.svc.RemoveExperience(context.Background(), f.ownerID(), middle.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, p.Experience, 2)
}

func TestEducationLifecycle(t *testing.T) {
	f := newProfileFixture(t)
	_, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	_, err = f.svc.AddEducation(context.Background(), f.ownerID(), validation.EducationInput{School: "S1", Degree: "BSc", FieldOfStudy: "CS", From: "2014"})
	require.NoError(t, err)
	p, err := f.svc.AddEducation(context.Background(), f.ownerID(), validation.EducationInput{School: "S2", Degree: "MSc", FieldOfStudy: "CS", From: "2018"})
	require.NoError(t, err)

	require.Len(t, p.Education, 2)
	assert.Equal(t, "S2", p.Education[0].School)

	p, err = f.svc.RemoveEducation(context.Background(), f.ownerID(), p.Education[0].ID.Hex())
	require.NoError(t, err)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "S1", p.Education[0].School)
}

func TestGetMineNoProfile(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.svc.GetMine(context.Background(), f.ownerID())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	var ae *utils.AppError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "noprofile")
}

func TestGetAllEmpty(t *testing.T) {
	f := newProfileFixture(t)

	list, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetByHandleAndUserID(t *testing.T) {
	f := newProfileFixture(t)
	_, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	p, err := f.svc.GetByHandle(context.Background(), "ada")
	require.NoError(t, err)
	require.NotNil(t, p.User)
	assert.Equal(t, "Ada", p.User.Name)

	p, err = f.svc.GetByUserID(context.Background(), f.ownerID())
	require.NoError(t, err)
	assert.Equal(t, "ada", p.Handle)

	_, err = f.svc.GetByHandle(context.Background(), "missing")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	// malformed ids read as "no profile", not as a server error
	_, err = f.svc.GetByUserID(context.Background(), "zzz")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = f.svc.GetByUserID(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestDeleteAccountCascades(t *testing.T) {
	f := newProfileFixture(t)
	_, err := f.svc.Save(context.Background(), f.ownerID(), profileInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteAccount(context.Background(), f.ownerID()))

	_, err = f.profiles.FindByUser(context.Background(), f.owner.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	_, err = f.users.FindByID(context.Background(), f.owner.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
