package validation

// RegisterInput is the registration submission body.
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func ValidateRegister(in RegisterInput) Result {
	errs := map[string]string{}

	switch {
	case in.Name == "":
		errs["name"] = "Name field is required"
	case !lengthBetween(in.Name, 2, 30):
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	switch {
	case in.Email == "":
		errs["email"] = "Email field is required"
	case !isEmail(in.Email):
		errs["email"] = "Email is invalid"
	}

	switch {
	case in.Password == "":
		errs["password"] = "Password field is required"
	case !lengthBetween(in.Password, 6, 30):
		errs["password"] = "Password must be at least 6 characters"
	}

	switch {
	case in.Password2 == "":
		errs["password2"] = "Confirm Password field is required"
	case in.Password2 != in.Password:
		errs["password2"] = "Passwords must match"
	}

	return result(errs)
}
