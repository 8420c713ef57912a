package http

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sanitizeFilename quita diacríticos y reemplaza caracteres problemáticos para
// usar el resultado en Content-Disposition. Ej: "Informe Eléctrico S.A." →
// "Informe_Electrico_S.A.".
func sanitizeFilename(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, s)
	if err != nil {
		clean = s
	}
	var b strings.Builder
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "documento"
	}
	return b.String()
}
