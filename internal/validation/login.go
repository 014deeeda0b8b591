package validation

// LoginInput is the login submission body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateLogin(in LoginInput) Result {
	errs := map[string]string{}

	switch {
	case in.Email == "":
		errs["email"] = "Email field is required"
	case !isEmail(in.Email):
		errs["email"] = "Email is invalid"
	}

	if in.Password == "" {
		errs["password"] = "Password field is required"
	}

	return result(errs)
}
