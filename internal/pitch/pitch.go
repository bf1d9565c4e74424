package pitch

import (
	"fmt"
	"math"
	"strconv"
)

// Shift plans a pitch adjustment measured in equal-tempered semitones.
type Shift struct {
	Semitones int
}

// NewShift returns a plan for the given signed semitone offset. Zero is a
// valid offset and yields an identity plan.
func NewShift(semitones int) Shift {
	return Shift{Semitones: semitones}
}

// Multiplier returns the resample factor 2^(semitones/12). A zero offset
// returns exactly 1.0.
func (s Shift) Multiplier() float64 {
	if s.Semitones == 0 {
		return 1.0
	}
	return math.Pow(2, float64(s.Semitones)/12)
}

// Description renders the shift for user-facing summaries.
func (s Shift) Description() string {
	switch {
	case s.Semitones > 0:
		return fmt.Sprintf("raised by %d %s", s.Semitones, semitoneNoun(s.Semitones))
	case s.Semitones < 0:
		return fmt.Sprintf("lowered by %d %s", -s.Semitones, semitoneNoun(-s.Semitones))
	default:
		return "unchanged"
	}
}

// Filter renders the transcoder audio filter expression for the shift at the
// given base sample rate. The expression resamples to rate*multiplier and
// back, so pitch and tempo change together; the output plays faster when
// raised and slower when lowered. A zero offset still renders a complete
// identity expression rather than an empty filter argument.
func (s Shift) Filter(sampleRate int) string {
	multiplier := strconv.FormatFloat(s.Multiplier(), 'f', 6, 64)
	return fmt.Sprintf("asetrate=%d*%s,aresample=%d", sampleRate, multiplier, sampleRate)
}

func semitoneNoun(count int) string {
	if count == 1 {
		return "semitone"
	}
	return "semitones"
}
