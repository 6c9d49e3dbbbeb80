package schedule

import (
	"errors"

	"calendar-booking/internal/pkg/civil"
)

var (
	ErrClosedWeekday = errors.New("the selected weekday is a recurring closure day")
	ErrOutsideHours  = errors.New("the interval is outside operating hours")
)

// Validate checks a candidate [start,end) interval against one weekday's
// business rules. It is pure: the caller supplies the weekday's operating
// hours (nil when unconfigured) and its active closure rules.
//
// An absent operating-hours record means no hour restriction is enforced;
// unconfigured weekdays are deliberately open-ended.
//
// skipBusinessRules bypasses both checks. Callers set it when the candidate
// itself represents a closure marker, since closures are exempt from the
// hours and closure-day checks against themselves.
func Validate(hours *OperatingHours, closures []*ClosureRule, start, end civil.TimeOfDay, skipBusinessRules bool) error {
	if skipBusinessRules {
		return nil
	}

	for _, rule := range closures {
		if rule.Active() {
			return ErrClosedWeekday
		}
	}

	if hours != nil && !hours.Contains(start, end) {
		return ErrOutsideHours
	}

	return nil
}
