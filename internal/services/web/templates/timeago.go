package templates

import "time"

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// TimeAgo describes t relative to now ("5 minutes ago"). Future times and
// anything under a minute read as "just now".
func TimeAgo(loc Localizer, now, t time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return T(loc, "web.time.just_now")
	case elapsed < time.Hour:
		return pluralAgo(loc, int(elapsed/time.Minute), "web.time.minute_ago", "web.time.minutes_ago")
	case elapsed < day:
		return pluralAgo(loc, int(elapsed/time.Hour), "web.time.hour_ago", "web.time.hours_ago")
	case elapsed < month:
		return pluralAgo(loc, int(elapsed/day), "web.time.day_ago", "web.time.days_ago")
	case elapsed < year:
		return pluralAgo(loc, int(elapsed/month), "web.time.month_ago", "web.time.months_ago")
	default:
		return pluralAgo(loc, int(elapsed/year), "web.time.year_ago", "web.time.years_ago")
	}
}

func pluralAgo(loc Localizer, n int, singular, plural string) string {
	if n == 1 {
		return T(loc, singular, n)
	}
	return T(loc, plural, n)
}
