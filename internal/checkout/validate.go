// Package checkout validates the customer snapshot and freezes the current
// cart into an immutable order record.
package checkout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"backend/internal/models"
)

// ValidationError carries a field-level reason, surfaced to the caller before
// anything is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF checks the Brazilian national id: 11 digits after stripping
// punctuation, not all identical, and both modulo-11 check digits correct.
func ValidCPF(cpf string) bool {
	digits := onlyDigits(cpf)
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit computes the modulo-11 check digit over the first n digits with
// weights n+1 down to 2. A remainder of 10 maps to 0.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rem := sum * 10 % 11
	if rem == 10 {
		rem = 0
	}
	return rem
}

// ValidPhone accepts Brazilian numbers: 10 or 11 digits with a two-digit
// area code between 11 and 99.
func ValidPhone(phone string) bool {
	digits := onlyDigits(phone)
	if len(digits) != 10 && len(digits) != 11 {
		return false
	}

	area, err := strconv.Atoi(digits[:2])
	if err != nil {
		return false
	}
	return area >= 11 && area <= 99
}

// ValidateCustomer runs all snapshot checks. Name and email are required;
// CPF and phone are validated only when present.
func ValidateCustomer(customer models.OrderCustomer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return ValidationError{Field: "nome", Message: "nome é obrigatório"}
	}
	if strings.TrimSpace(customer.Email) == "" {
		return ValidationError{Field: "email", Message: "email é obrigatório"}
	}
	if !ValidEmail(customer.Email) {
		return ValidationError{Field: "email", Message: "email inválido"}
	}
	if strings.TrimSpace(customer.CPF) != "" && !ValidCPF(customer.CPF) {
		return ValidationError{Field: "cpf", Message: "CPF inválido"}
	}
	if strings.TrimSpace(customer.Phone) != "" && !ValidPhone(customer.Phone) {
		return ValidationError{Field: "telefone", Message: "telefone inválido"}
	}
	return nil
}
