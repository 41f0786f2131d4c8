package checkout

import (
	"testing"

	"backend/internal/models"
)

func TestValidCPFAcceptsWellFormedNumbers(t *testing.T) {
	valid := []string{
		"111.444.777-35",
		"11144477735",
		"529.982.247-25",
	}
	for _, cpf := range valid {
		if !ValidCPF(cpf) {
			t.Fatalf("expected CPF %q to be valid", cpf)
		}
	}
}

func TestValidCPFRejectsRepeatedDigits(t *testing.T) {
	for _, cpf := range []string{"111.111.111-11", "00000000000", "99999999999"} {
		if ValidCPF(cpf) {
			t.Fatalf("expected repeated-digit CPF %q to be invalid", cpf)
		}
	}
}

func TestValidCPFRejectsWrongLengthAndBadCheckDigits(t *testing.T) {
	invalid := []string{
		"123",
		"111.444.777-36",
		"111.444.777-45",
		"1114447773",
		"111444777350",
		"",
	}
	for _, cpf := range invalid {
		if ValidCPF(cpf) {
			t.Fatalf("expected CPF %q to be invalid", cpf)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(11) 98765-4321", true},
		{"1187654321", true},
		{"11987654321", true},
		{"(99) 3456-7890", true},
		{"(10) 98765-4321", false},
		{"(01) 98765-4321", false},
		{"987654321", false},
		{"119876543210", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Fatalf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("cliente@exemplo.com.br") {
		t.Fatal("expected plain address to be valid")
	}
	for _, email := range []string{"", "semarroba", "dois@@exemplo.com", "a@b", "a b@c.com"} {
		if ValidEmail(email) {
			t.Fatalf("expected email %q to be invalid", email)
		}
	}
}

func TestValidateCustomerFieldOrder(t *testing.T) {
	err := ValidateCustomer(models.OrderCustomer{})
	vErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "nome" {
		t.Fatalf("expected nome to fail first, got %s", vErr.Field)
	}

	err = ValidateCustomer(models.OrderCustomer{Name: "Ana", Email: "ana@exemplo.com", CPF: "123"})
	vErr, ok = err.(ValidationError)
	if !ok || vErr.Field != "cpf" {
		t.Fatalf("expected cpf validation error, got %v", err)
	}

	err = ValidateCustomer(models.OrderCustomer{Name: "Ana", Email: "ana@exemplo.com", Phone: "123"})
	vErr, ok = err.(ValidationError)
	if !ok || vErr.Field != "telefone" {
		t.Fatalf("expected telefone validation error, got %v", err)
	}

	if err := ValidateCustomer(models.OrderCustomer{
		Name:  "Ana",
		Email: "ana@exemplo.com",
		CPF:   "111.444.777-35",
		Phone: "(11) 98765-4321",
	}); err != nil {
		t.Fatalf("expected full snapshot to validate, got %v", err)
	}
}
