package validators

import "time"

// Formatos de entrada da API pública.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func IsValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

func IsValidClock(s string) bool {
	t, err := time.Parse(ClockLayout, s)
	return err == nil && t.Format(ClockLayout) == s
}

// IsOnGrid exige alinhamento à grade de 30 minutos.
func IsOnGrid(s string) bool {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return false
	}
	return t.Minute()%30 == 0
}
