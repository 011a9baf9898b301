package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma data YYYY-MM-DD; string vazia resulta em nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, formato esperado YYYY-MM-DD", dateStr)
	}

	return &date, nil
}

// Today retorna a data atual em UTC sem horário
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
