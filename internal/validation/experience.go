package validation

// ExperienceInput is the add-experience submission body.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func ValidateExperience(in ExperienceInput) Result {
	errs := map[string]string{}

	if in.Title == "" {
		errs["title"] = "Job title field is required"
	}
	if in.Company == "" {
		errs["company"] = "Company field is required"
	}
	if in.From == "" {
		errs["from"] = "From date field is required"
	}

	return result(errs)
}
