package appointment

import (
	"fmt"
	"time"

	"github.com/navalha-app/booking-api/internal/models"
)

// TimeSlot é derivado por requisição, nunca persistido.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GridStepMinutes é o passo fixo da grade de horários, independente
// da duração do serviço.
const GridStepMinutes = 30

// GenerateSlots monta a grade completa do dia para um barbeiro.
//
// Percorre o expediente em passos de 30 minutos e só emite slots cujo
// serviço inteiro cabe antes do fechamento (cursor + duração <= end).
// Um slot fica indisponível quando começa dentro de uma pausa
// (start <= cursor < end), quando o horário já consta em booked ou,
// se sameDay, quando o horário já passou (exatamente "agora" conta
// como passado).
//
// Função pura: mesmas entradas, mesma saída.
func GenerateSlots(
	day *models.DaySchedule,
	durationMin int,
	booked map[string]bool,
	now time.Time,
	sameDay bool,
) []TimeSlot {

	if day == nil {
		return nil // folga
	}

	start, err := clockMinutes(day.Start)
	if err != nil {
		return nil
	}
	end, err := clockMinutes(day.End)
	if err != nil {
		return nil
	}

	nowMin := now.Hour()*60 + now.Minute()

	var slots []TimeSlot

	for cur := start; cur+durationMin <= end; cur += GridStepMinutes {

		label := fmt.Sprintf("%02d:%02d", cur/60, cur%60)

		inBreak := false
		for _, b := range day.Breaks {
			bs, errS := clockMinutes(b.Start)
			be, errE := clockMinutes(b.End)
			if errS != nil || errE != nil {
				continue
			}
			if cur >= bs && cur < be {
				inBreak = true
				break
			}
		}

		isBooked := booked[label]
		isPast := sameDay && cur <= nowMin

		slots = append(slots, TimeSlot{
			Time:      label,
			Available: !inBreak && !isBooked && !isPast,
		})
	}

	return slots
}

func clockMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
