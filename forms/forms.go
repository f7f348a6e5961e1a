// Package forms validates incoming form data before it reaches the services.
// Each form shape gets an explicit Validate method returning field-level
// errors, so a handler can decide what to re-render without inspecting
// the error text.
package forms

import (
	"net/url"
	"unicode/utf8"
)

// PasswordMinLength is the minimum number of characters for user passwords.
const PasswordMinLength = 6

// A FieldError describes why a single form field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageForm holds the input for adding a message.
type MessageForm struct {
	Text string
}

// ParseMessageForm reads a MessageForm from decoded form values.
func ParseMessageForm(v url.Values) MessageForm {
	return MessageForm{
		Text: v.Get("text"),
	}
}

// Validate checks the form and returns one error per rejected field.
func (f MessageForm) Validate() []FieldError {
	var errs []FieldError
	if f.Text == "" {
		errs = append(errs, FieldError{"text", "Text is required."})
	}
	return errs
}

// SignupForm holds the input for registering a new user.
type SignupForm struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

// ParseSignupForm reads a SignupForm from decoded form values.
func ParseSignupForm(v url.Values) SignupForm {
	return SignupForm{
		Username: v.Get("username"),
		Email:    v.Get("email"),
		Password: v.Get("password"),
		ImageURL: v.Get("image_url"),
	}
}

// Validate checks the form and returns one error per rejected field.
func (f SignupForm) Validate() []FieldError {
	var errs []FieldError
	if f.Username == "" {
		errs = append(errs, FieldError{"username", "Username is required."})
	}
	if f.Email == "" {
		errs = append(errs, FieldError{"email", "E-mail is required."})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required."})
	} else if utf8.RuneCountInString(f.Password) < PasswordMinLength {
		errs = append(errs, FieldError{"password", "Password must have at least 6 characters."})
	}
	return errs
}

// LoginForm holds the input for logging in.
type LoginForm struct {
	Username string
	Password string
}

// ParseLoginForm reads a LoginForm from decoded form values.
func ParseLoginForm(v url.Values) LoginForm {
	return LoginForm{
		Username: v.Get("username"),
		Password: v.Get("password"),
	}
}

// Validate checks the form and returns one error per rejected field.
func (f LoginForm) Validate() []FieldError {
	var errs []FieldError
	if f.Username == "" {
		errs = append(errs, FieldError{"username", "Username is required."})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required."})
	}
	return errs
}

// ProfileForm holds the input for editing a user's profile. The password
// is the user's current one, required to reauthorize the edit.
type ProfileForm struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Password       string
}

// ParseProfileForm reads a ProfileForm from decoded form values.
func ParseProfileForm(v url.Values) ProfileForm {
	return ProfileForm{
		Username:       v.Get("username"),
		Email:          v.Get("email"),
		ImageURL:       v.Get("image_url"),
		HeaderImageURL: v.Get("header_image_url"),
		Bio:            v.Get("bio"),
		Password:       v.Get("password"),
	}
}

// Validate checks the form and returns one error per rejected field.
func (f ProfileForm) Validate() []FieldError {
	var errs []FieldError
	if f.Username == "" {
		errs = append(errs, FieldError{"username", "Username is required."})
	}
	if f.Email == "" {
		errs = append(errs, FieldError{"email", "E-mail is required."})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required to save changes."})
	}
	return errs
}
