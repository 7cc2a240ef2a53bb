// Package validators checks user input before the client sends it to the
// API, so form mistakes are caught without a round-trip.
package validators

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/grustnolabs/go-grustnogram/models"
)

// registrationInput mirrors [models.Registration] with validation tags.
// The API enforces its own rules server-side; these are the subset that is
// safe to reject locally. Phone is expected in +7XXXXXXXXXX form, which is
// what utils.NormalizePhone produces.
type registrationInput struct {
	Nickname string `validate:"required,min=3,max=32,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Phone    string `validate:"required,e164"`
}

type loginInput struct {
	// Login may be an email or a nickname, so only presence is checked.
	Login    string `validate:"required"`
	Password string `validate:"required"`
}

// Validator wraps a configured validator.Validate with helpers for the
// client's input forms. Errors carry user-facing Russian messages.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Registration checks reg and reports the first problem found.
func (v *Validator) Registration(reg models.Registration) error {
	in := registrationInput{
		Nickname: reg.Nickname,
		Email:    reg.Email,
		Password: reg.Password,
		Phone:    reg.Phone,
	}
	return firstMessage(v.validate.Struct(in))
}

// Login checks the sign-in form.
func (v *Validator) Login(login, password string) error {
	in := loginInput{Login: login, Password: password}
	return firstMessage(v.validate.Struct(in))
}

// firstMessage converts the first field error into its user-facing
// message. Non-validation errors pass through unchanged.
func firstMessage(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(messageFor(verrs[0]))
	}

	return err
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Nickname":
		if fe.Tag() == "required" {
			return "Укажите никнейм"
		}
		return "Никнейм: от 3 до 32 символов, латиница и цифры"
	case "Email":
		if fe.Tag() == "required" {
			return "Укажите email"
		}
		return "Некорректный email"
	case "Password":
		if fe.Tag() == "required" {
			return "Укажите пароль"
		}
		return "Пароль должен быть не менее 6 символов"
	case "Phone":
		return "Телефон в формате +7XXXXXXXXXX"
	case "Login":
		return "Укажите email или никнейм"
	default:
		return "Неверные данные"
	}
}
