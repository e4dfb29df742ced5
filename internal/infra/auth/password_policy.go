package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"shelf/config"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"
)

// MinPasswordLength is the floor for every deployment; config can only raise it.
const MinPasswordLength = 8

type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

// NewPasswordPolicy builds the policy from the passwordStrength settings.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	p := &passwordPolicy{minLength: MinPasswordLength}
	if cfg == nil || cfg.PasswordStrength == nil {
		return p
	}

	ps := cfg.PasswordStrength
	if ps.MinLength > p.minLength {
		p.minLength = ps.MinLength
	}
	p.maxLength = ps.MaxLength
	p.requireUppercase = ps.RequireUppercase
	p.requireLowercase = ps.RequireLowercase
	p.requireNumbers = ps.RequireNumbers
	p.requireSpecial = ps.RequireSpecial

	return p
}

// Validate returns ErrPasswordStrength wrapped with the first unmet rule.
func (p *passwordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least " + strconv.Itoa(p.minLength) + " characters")
	}
	if p.maxLength > 0 && length > p.maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at most " + strconv.Itoa(p.maxLength) + " characters")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if p.requireUppercase && !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if p.requireLowercase && !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if p.requireNumbers && !hasNumber {
		missing = append(missing, "a number")
	}
	if p.requireSpecial && !hasSpecial {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain " + strings.Join(missing, ", "))
	}

	return nil
}
