package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// Layout é o formato das datas de lançamento na API (yyyy-MM-dd HH:mm:ss).
const Layout = "2006-01-02 15:04:05"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// sem tzdata no sistema
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// Parse lê uma data no Layout, no fuso padrão.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, Location(DefaultTimezone))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.In(Location(DefaultTimezone)).Format(Layout)
}
