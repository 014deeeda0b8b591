package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the public-facing per-user document. At most one per User,
// linked through the unique "user" field.
type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user" json:"-"`
	User           *UserRef           `bson:"-" json:"user,omitempty"`
	Handle         string             `bson:"handle,omitempty" json:"handle,omitempty"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Skills         []string           `bson:"skills" json:"skills"`
	Social         Social             `bson:"social" json:"social"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Social holds the fixed set of supported networks. Keys outside this set
// are dropped at the request-binding boundary.
type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

func (s Social) IsZero() bool {
	return s == Social{}
}

// Experience is an embedded work-history record. Entries are kept
// newest-first; the ID targets removal.
type Experience struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        string             `bson:"from" json:"from"`
	To          string             `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Education is an embedded school-history record, same ordering rules as
// Experience.
type Education struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	School       string             `bson:"school" json:"school"`
	Degree       string             `bson:"degree" json:"degree"`
	FieldOfStudy string             `bson:"fieldofstudy" json:"fieldofstudy"`
	From         string             `bson:"from" json:"from"`
	To           string             `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ProfilePatch is the optional-field update shape for create/edit profile.
// Empty scalar fields mean "leave untouched"; Skills is nil when the caller
// did not send a skills string at all.
type ProfilePatch struct {
	Handle         string
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         []string
	Social         Social
}

// SetDoc merges the patch into a $set document containing only the fields
// the caller actually supplied.
func (p ProfilePatch) SetDoc(now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if p.Handle != "" {
		set["handle"] = p.Handle
	}
	if p.Company != "" {
		set["company"] = p.Company
	}
	if p.Website != "" {
		set["website"] = p.Website
	}
	if p.Location != "" {
		set["location"] = p.Location
	}
	if p.Bio != "" {
		set["bio"] = p.Bio
	}
	if p.Status != "" {
		set["status"] = p.Status
	}
	if p.GithubUsername != "" {
		set["githubusername"] = p.GithubUsername
	}
	if p.Skills != nil {
		set["skills"] = p.Skills
	}
	if !p.Social.IsZero() {
		set["social"] = p.Social
	}
	return set
}

// NewProfile materializes a fresh document from a patch for the create path.
func (p ProfilePatch) NewProfile(userID primitive.ObjectID, now time.Time) *Profile {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return &Profile{
		UserID:         userID,
		Handle:         p.Handle,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         skills,
		Social:         p.Social,
		Experience:     []Experience{},
		Education:      []Education{},
		UpdatedAt:      now,
	}
}
