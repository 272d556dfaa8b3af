package web

import (
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]+$`)

const (
	maxFieldLen    = 255 // runes, size of short text columns
	maxPasswordLen = 72  // bytes, bcrypt input limit
)

// user-visible validation and status messages
const (
	msgFirstNameShort   = "First name must be at least 2 characters long."
	msgLastNameShort    = "Last name must be at least 2 characters long."
	msgFirstNameLong    = "First name must be at most 255 characters long."
	msgLastNameLong     = "Last name must be at most 255 characters long."
	msgEmailLong        = "Email must be at most 255 characters long."
	msgPasswordLong     = "Password must be at most 72 bytes long."
	msgEmailInvalid     = "Invalid email address."
	msgPasswordShort    = "Password must be at least 8 characters long."
	msgPasswordMismatch = "Password and Password Confirmation do not match."
	msgEmailExists      = "Email already exists. Please proceed to login."
	msgRegistered       = "Thanks for registering. Please proceed to login."
	msgEmailUnknown     = "Email does not exist. Please register."
	msgBadPassword      = "Email and password do not match. Please try again."
	msgTitleShort       = "Title must be at least 4 characters long."
	msgDescriptionShort = "Description must be at least 11 characters long."
	msgLocationEmpty    = "Please enter a location."
	msgTitleLong        = "Title must be at most 255 characters long."
	msgLocationLong     = "Location must be at most 255 characters long."
	msgUpdated          = "Successfully updated."
	msgLoginRequired    = "Please log in to continue."
)

type registerForm struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Confirm   string
}

func parseRegisterForm(r *http.Request) registerForm {
	return registerForm{
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Email:     normalizeEmail(r.PostFormValue("email")),
		Password:  r.PostFormValue("password"),
		Confirm:   r.PostFormValue("confirm_password"),
	}
}

// validate returns all failed field rules, email uniqueness is checked by the caller
func (f registerForm) validate() []string {
	var errs []string
	switch n := utf8.RuneCountInString(f.FirstName); {
	case n < 2:
		errs = append(errs, msgFirstNameShort)
	case n > maxFieldLen:
		errs = append(errs, msgFirstNameLong)
	}
	switch n := utf8.RuneCountInString(f.LastName); {
	case n < 2:
		errs = append(errs, msgLastNameShort)
	case n > maxFieldLen:
		errs = append(errs, msgLastNameLong)
	}
	switch {
	case !emailRe.MatchString(f.Email):
		errs = append(errs, msgEmailInvalid)
	case utf8.RuneCountInString(f.Email) > maxFieldLen:
		errs = append(errs, msgEmailLong)
	}
	switch {
	case utf8.RuneCountInString(f.Password) < 8:
		errs = append(errs, msgPasswordShort)
	case len(f.Password) > maxPasswordLen:
		errs = append(errs, msgPasswordLong)
	}
	if f.Password != f.Confirm {
		errs = append(errs, msgPasswordMismatch)
	}
	return errs
}

// stash returns values safe to keep for form repopulation, passwords never kept
func (f registerForm) stash() map[string]string {
	return map[string]string{"first_name": f.FirstName, "last_name": f.LastName, "email": f.Email}
}

type jobForm struct {
	Title       string
	Description string
	Location    string
}

func parseJobForm(r *http.Request) jobForm {
	return jobForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Location:    strings.TrimSpace(r.PostFormValue("location")),
	}
}

func (f jobForm) validate() []string {
	var errs []string
	switch n := utf8.RuneCountInString(f.Title); {
	case n < 4:
		errs = append(errs, msgTitleShort)
	case n > maxFieldLen:
		errs = append(errs, msgTitleLong)
	}
	if utf8.RuneCountInString(f.Description) < 11 {
		errs = append(errs, msgDescriptionShort)
	}
	switch {
	case f.Location == "":
		errs = append(errs, msgLocationEmpty)
	case utf8.RuneCountInString(f.Location) > maxFieldLen:
		errs = append(errs, msgLocationLong)
	}
	return errs
}

func (f jobForm) values() map[string]string {
	return map[string]string{"title": f.Title, "description": f.Description, "location": f.Location}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
