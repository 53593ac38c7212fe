package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-flix/models"
)

const (
	FieldUserName    = "user_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldPassword    = "password"
)

// column limits of the users table
var maxFieldLength = map[string]int{
	FieldUserName:    50,
	FieldEmail:       100,
	FieldPhoneNumber: 20,
}

type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// NormalizeRegisterRequest trims surrounding whitespace from the user name,
// the e-mail and the phone number. An all-blank phone number becomes nil.
// The password is kept as typed, the same way login compares it.
func NormalizeRegisterRequest(req models.RegisterRequest) models.RegisterRequest {
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	if req.PhoneNumber != nil {
		phone := strings.TrimSpace(*req.PhoneNumber)
		req.PhoneNumber = nil
		if phone != "" {
			req.PhoneNumber = &phone
		}
	}
	return req
}

// NormalizeLoginRequest trims surrounding whitespace from the user name.
// The password is compared as typed.
func NormalizeLoginRequest(req models.LoginRequest) models.LoginRequest {
	req.UserName = strings.TrimSpace(req.UserName)
	return req
}

// validateRegisterRequest checks a RegisterRequest.
//
// Default validated fields: user_name, email, password, phone_number.
// All empty required fields are reported together, wrapped in
// [ErrMissingFields]; format and length checks run only afterwards.
func (v *AuthValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldEmail, FieldPassword, FieldPhoneNumber}
	}

	var missing []string
	for _, f := range fields {
		switch f {
		case FieldUserName:
			if req.UserName == "" {
				missing = append(missing, f)
			}
		case FieldEmail:
			if req.Email == "" {
				missing = append(missing, f)
			}
		case FieldPassword:
			if req.Password == "" {
				missing = append(missing, f)
			}
		case FieldPhoneNumber:
			// optional
		default:
			return ErrUnknownField
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if err := checkLength(f, req.UserName); err != nil {
				return err
			}
		case FieldEmail:
			if err := checkLength(f, req.Email); err != nil {
				return err
			}
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPhoneNumber:
			if req.PhoneNumber != nil {
				if err := checkLength(f, *req.PhoneNumber); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// validateLoginRequest checks that user_name and password are present.
func (v *AuthValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword}
	}

	var missing []string
	for _, f := range fields {
		switch f {
		case FieldUserName:
			if req.UserName == "" {
				missing = append(missing, f)
			}
		case FieldPassword:
			if req.Password == "" {
				missing = append(missing, f)
			}
		default:
			return ErrUnknownField
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	return nil
}

func checkLength(field, value string) error {
	if limit, ok := maxFieldLength[field]; ok && utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, field, limit)
	}
	return nil
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, "@")
}
