package validation

// ProfileInput is the create/edit profile submission body. Skills arrives as
// a single comma-separated string and is split downstream.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

func ValidateProfile(in ProfileInput) Result {
	errs := map[string]string{}

	switch {
	case in.Handle == "":
		errs["handle"] = "Profile handle is required"
	case !lengthBetween(in.Handle, 2, 40):
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}

	if in.Status == "" {
		errs["status"] = "Status field is required"
	}
	if in.Skills == "" {
		errs["skills"] = "Skills field is required"
	}

	// Optional URL fields: absent means "not provided", never invalid.
	urlFields := map[string]string{
		"website":   in.Website,
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	}
	for field, val := range urlFields {
		if val != "" && !isURL(val) {
			errs[field] = "Not a valid URL"
		}
	}

	return result(errs)
}
