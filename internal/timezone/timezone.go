package timezone

import "time"

// A barbearia opera num fuso único (sem suporte multi-timezone).
const DefaultTimezone = "America/Sao_Paulo"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}
