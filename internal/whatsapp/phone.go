package whatsapp

import (
	"strings"
)

// NormalizePhone reduces a user-supplied phone number to digits only, so
// inputs like "+1 (234) 567-8900" become "12345678900".
func NormalizePhone(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
