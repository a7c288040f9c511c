package receiving

import (
	"fmt"
	"regexp"
	"time"
)

// Formato del consecutivo de recepciones: RCPT-YYYYMMDD-NNN (secuencia diaria).
const receiptDateLayout = "20060102"

var receiptSeqRe = regexp.MustCompile(`^RCPT-\d{8}-(\d{3})$`)

// NumberPrefix devuelve el prefijo de búsqueda para la fecha dada, ej. "RCPT-20240115-".
func NumberPrefix(date time.Time) string {
	return fmt.Sprintf("RCPT-%s-", date.Format(receiptDateLayout))
}

// NextNumber calcula el siguiente consecutivo para la fecha a partir del mayor
// número existente de ese día (cadena vacía si no hay ninguno => 001).
// Un último número que no calce con el formato reinicia la secuencia en 001.
func NextNumber(date time.Time, last string) string {
	seq := 1
	if m := receiptSeqRe.FindStringSubmatch(last); m != nil {
		fmt.Sscanf(m[1], "%d", &seq)
		seq++
	}
	return fmt.Sprintf("RCPT-%s-%03d", date.Format(receiptDateLayout), seq)
}
