package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"empty", "", false},
		{"simple", "user@example.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus tag", "user+tag@example.com", true},
		{"missing at", "userexample.com", false},
		{"missing domain", "user@", false},
		{"consecutive dots", "user..name@example.com", false},
		{"leading dot", ".user@example.com", false},
		{"trailing dot", "user@example.com.", false},
		{"dot before at", "user.@example.com", false},
		{"dot after at", "user@.example.com", false},
		{"too long", strings.Repeat("a", 250) + "@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"cedula empty", "cedula", "", "La cédula es requerida"},
		{"cedula invalid", "cedula", "12345678901", "Cédula dominicana inválida"},
		{"cedula valid", "cedula", "001-1391820-5", ""},
		{"email empty", "email", "", "El email es requerido"},
		{"email invalid", "email", "no-at-sign", "Formato de email inválido"},
		{"email valid", "email", "admin@rentora.do", ""},
		{"credit limit empty", "limite_credito", "", "El límite de crédito es requerido"},
		{"credit limit not a number", "limite_credito", "abc", "Debe ser un número válido"},
		{"credit limit negative", "limite_credito", "-5", "El límite de crédito no puede ser negativo"},
		{"credit limit valid", "limite_credito", "50000", ""},
		{"unknown field", "telefono", "whatever", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.field, tt.value))
		})
	}
}
