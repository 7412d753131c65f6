package utils

import (
	"time"

	"medrecord-service/internal/pkg/exceptions"
)

const dateLayoutYYYYMMDD = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayoutYYYYMMDD, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

// ParseDatePtr maps an optional YYYY-MM-DD string to an optional time.
func ParseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
