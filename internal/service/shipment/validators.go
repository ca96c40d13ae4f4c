package shipment

import "strings"

func isPresent(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func isPresentValue(s string) bool {
	return strings.TrimSpace(s) != ""
}
