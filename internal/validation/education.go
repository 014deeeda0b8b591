package validation

// EducationInput is the add-education submission body.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func ValidateEducation(in EducationInput) Result {
	errs := map[string]string{}

	if in.School == "" {
		errs["school"] = "School field is required"
	}
	if in.Degree == "" {
		errs["degree"] = "Degree field is required"
	}
	if in.FieldOfStudy == "" {
		errs["fieldofstudy"] = "Field of study field is required"
	}
	if in.From == "" {
		errs["from"] = "From date field is required"
	}

	return result(errs)
}
