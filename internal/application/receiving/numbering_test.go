package receiving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberPrefix(t *testing.T) {
	date := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "RCPT-20240115-", NumberPrefix(date))
}

func TestNextNumber(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		last string
		want string
	}{
		{"sin recepciones previas", "", "RCPT-20240115-001"},
		{"continúa la secuencia", "RCPT-20240115-002", "RCPT-20240115-003"},
		{"ignora ceros a la izquierda", "RCPT-20240115-009", "RCPT-20240115-010"},
		{"número manual fuera de formato reinicia", "RCPT-MANUAL-7", "RCPT-20240115-001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextNumber(date, tc.last))
		})
	}
}
