// Package validation holds the user field rules as a standalone layer,
// invoked by the auth service before a record is constructed and again by
// the repository as a second line of defense on writes.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/addy-rall/mannkabackend/domain"
)

// Indian mobile numbers: 10 digits, first digit 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// registration is the tagged shape validated on sign-up.
type registration struct {
	Name     string `validate:"required,min=3"`
	Age      int    `validate:"required,min=1,max=120"`
	Phone    string `validate:"required,inmobile"`
	Email    string `validate:"required,email"`
	State    string `validate:"required"`
	City     string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// record is the tagged shape re-validated at the storage boundary. The
// password is a bcrypt hash by then, so only presence is checked.
type record struct {
	Name         string `validate:"required,min=3"`
	Age          int    `validate:"required,min=1,max=120"`
	Phone        string `validate:"required,inmobile"`
	Email        string `validate:"required,email"`
	State        string `validate:"required"`
	City         string `validate:"required"`
	PasswordHash string `validate:"required"`
}

// fieldMessages maps field+tag to the message reported to clients.
var fieldMessages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
		"min":      "Name must be at least 3 characters",
	},
	"Age": {
		"required": "Age is required",
		"min":      "Age must be at least 1",
		"max":      "Age must be less than 120",
	},
	"Phone": {
		"required": "Phone is required",
		"inmobile": "Enter a valid 10-digit Indian mobile number",
	},
	"Email": {
		"required": "Email is required",
		"email":    "Enter a valid email address",
	},
	"State": {
		"required": "State is required",
	},
	"City": {
		"required": "City is required",
	},
	"Password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	"PasswordHash": {
		"required": "Password is required",
	},
}

// UserValidator validates user input against the field rules.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() *UserValidator {
	v := validator.New()
	// Registration cannot fail: the tag name is well-formed and the
	// function never returns an error.
	_ = v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return &UserValidator{validate: v}
}

// ValidateRegistration checks a registration input and aggregates every
// violation into a single ValidationError.
func (v *UserValidator) ValidateRegistration(in domain.RegisterInput) error {
	return v.collect(v.validate.Struct(registration{
		Name:     in.Name,
		Age:      in.Age,
		Phone:    in.Phone,
		Email:    in.Email,
		State:    in.State,
		City:     in.City,
		Password: in.Password,
	}))
}

// ValidateRecord checks a user record immediately before it is written.
func (v *UserValidator) ValidateRecord(u *domain.User) error {
	return v.collect(v.validate.Struct(record{
		Name:         u.Name,
		Age:          u.Age,
		Phone:        u.Phone,
		Email:        u.Email,
		State:        u.State,
		City:         u.City,
		PasswordHash: u.PasswordHash,
	}))
}

func (v *UserValidator) collect(err error) error {
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(violations))
	for _, fe := range violations {
		if msg, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
			messages = append(messages, msg)
		} else {
			messages = append(messages, fe.Field()+" is invalid")
		}
	}
	return domain.NewValidationError(messages...)
}
