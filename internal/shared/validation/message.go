package validation

import "strconv"

// Message validates a single form field and returns the Spanish error
// string shown inline, or "" when the value is acceptable. Unknown fields
// are accepted as-is.
func Message(field, value string) string {
	switch field {
	case "cedula":
		if value == "" {
			return "La cédula es requerida"
		}
		if !ValidateCedula(value) {
			return "Cédula dominicana inválida"
		}
		return ""

	case "email":
		if value == "" {
			return "El email es requerido"
		}
		if !ValidateEmail(value) {
			return "Formato de email inválido"
		}
		return ""

	case "limite_credito":
		if value == "" {
			return "El límite de crédito es requerido"
		}
		limit, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "Debe ser un número válido"
		}
		if limit < 0 {
			return "El límite de crédito no puede ser negativo"
		}
		return ""

	default:
		return ""
	}
}
