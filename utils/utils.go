package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail reports whether the address has a plausible mailbox shape.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone applies the same minimal length check the rest of the
// system relies on.
func ValidatePhone(phone string) bool {
	return len(phone) >= 9
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" designator
// and zone-less values are both accepted; zone-less values are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if strings.HasSuffix(value, "Z") {
		if t, err := time.Parse("2006-01-02T15:04:05Z", value); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}

// BeginningOfMonth returns the first instant of t's calendar month.
func BeginningOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

// Pagination reads page/limit query parameters with the listing defaults.
func Pagination(c *fiber.Ctx) (page int, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
