package formaterror

import "strings"

// FormatError maps database constraint errors to form field messages.
func FormatError(err string) map[string]string {
	errList := make(map[string]string)
	lower := strings.ToLower(err)

	if strings.Contains(lower, "username") {
		errList["username"] = "A user with that username already exists."
	}
	if strings.Contains(lower, "email") {
		errList["email"] = "A user with that email already exists."
	}
	if strings.Contains(lower, "slug") {
		errList["slug"] = "Group with this slug already exists."
	}
	if len(errList) == 0 {
		errList["__all__"] = "Something went wrong, please try again."
	}
	return errList
}
