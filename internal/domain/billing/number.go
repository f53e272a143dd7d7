package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/vetclinic-pro/internal/domain"
)

// Formato del número de factura: PREFIX-NNNNNN (seis dígitos, cero a la izquierda).
// El número es la clave visible en recibos y búsquedas; el ID interno se usa en joins.

// FormatNumber construye el número de factura para un consecutivo dado.
func FormatNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

// ParseNumber descompone un número de factura en prefijo y consecutivo.
func ParseNumber(number string) (prefix string, seq int, err error) {
	idx := strings.LastIndex(number, "-")
	if idx <= 0 || idx == len(number)-1 {
		return "", 0, fmt.Errorf("%w: número de factura mal formado: %q", domain.ErrInvalidInput, number)
	}
	prefix = number[:idx]
	suffix := number[idx+1:]
	seq, err = strconv.Atoi(suffix)
	if err != nil || seq < 1 {
		return "", 0, fmt.Errorf("%w: consecutivo inválido en %q", domain.ErrInvalidInput, number)
	}
	return prefix, seq, nil
}
