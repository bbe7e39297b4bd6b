package bsncloud

import (
	"regexp"
	"strings"
	"time"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\s+\S+)?$`)
)

// validateTimeDate checks the player time/date formats: date as yyyy-mm-dd,
// time as hh:mm:ss with an optional trailing timezone.
func validateTimeDate(timeStr, dateStr string) error {
	if !datePattern.MatchString(dateStr) {
		return ErrBadDateFormat
	}
	if !timePattern.MatchString(timeStr) {
		return ErrBadTimeFormat
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return ErrBadDateValue
	}
	clock := strings.Fields(timeStr)[0]
	if _, err := time.Parse("15:04:05", clock); err != nil {
		return ErrBadTimeValue
	}
	return nil
}

// validateStorage checks a storage medium name against the media a player
// can carry.
func validateStorage(storage string) error {
	switch storage {
	case "sd", "usb", "ssd":
		return nil
	default:
		return ErrInvalidStorage
	}
}
