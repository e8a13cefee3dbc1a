package validate

import (
	"regexp"
	"strconv"
	"strings"

	"kicktwin/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,18}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reTrack = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, rePhone.MatchString(s)
}

// Name validates a displayable customer name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

func City(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ProductID parses a positive numeric product id.
func ProductID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Size accepts only the stocked range.
func Size(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < domain.SizeMin || n > domain.SizeMax {
		return 0, false
	}
	return n, true
}

// Qty parses a quantity, clamped to avoid abuse. Zero is allowed so the cart
// update form can drive removal.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	if n > 50 {
		n = 50
	}
	return n, true
}

// Kind validates the catalog filter value; empty means "all".
func Kind(s string) (domain.Kind, bool) {
	s = strings.TrimSpace(s)
	switch domain.Kind(s) {
	case "", domain.KindOriginal, domain.KindReplica:
		return domain.Kind(s), true
	}
	return "", false
}

// TrackingID validates an order number or shipment code.
func TrackingID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reTrack.MatchString(s)
}
