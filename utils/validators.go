package utils

import (
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateEmail checks basic email format.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateDate checks YYYY-MM-DD format. Date-range queries compare
// dates lexicographically, which only holds under this format.
func ValidateDate(date string) bool {
	return datePattern.MatchString(date)
}

// ValidateAge checks the supported age range for the app (12-30).
func ValidateAge(age int) bool {
	return age >= 12 && age <= 30
}
