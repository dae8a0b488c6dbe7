package http

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aretw0/guesser/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// answerPayload mirrors the wire shape of an answer-check response.
// Pointers distinguish an absent field from its zero value.
type answerPayload struct {
	Result           string  `mapstructure:"result"`
	Answer           *string `mapstructure:"answer"`
	WrongCount       *int    `mapstructure:"wrong_count"`
	GuessesRemaining *int    `mapstructure:"guesses_remaining"`
	ShowHint         *bool   `mapstructure:"show_hint"`
	Hint             *string `mapstructure:"hint"`
}

// DecodeOutcome turns a raw JSON value into a fully-populated Outcome.
//
// Defaults for absent (or null) fields: Answer and Hint are empty, ShowHint is false,
// GuessesRemaining is 0, and HasWrongCount is false so the displayed counter is left
// unchanged. A body that is not a JSON object, or a field of the wrong type, is an error.
func DecodeOutcome(raw any) (domain.Outcome, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Outcome{}, fmt.Errorf("answer payload must be an object, got %T", raw)
	}

	var p answerPayload
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &p,
		TagName:    "mapstructure",
		DecodeHook: exactInt,
	})
	if err != nil {
		return domain.Outcome{}, err
	}
	if err := dec.Decode(obj); err != nil {
		return domain.Outcome{}, fmt.Errorf("failed to decode answer payload: %w", err)
	}

	o := domain.Outcome{
		Verdict:   domain.ParseVerdict(p.Result),
		RawResult: p.Result,
	}
	if p.Answer != nil {
		o.Answer = *p.Answer
	}
	if p.WrongCount != nil {
		o.WrongCount = *p.WrongCount
		o.HasWrongCount = true
	}
	if p.GuessesRemaining != nil {
		o.GuessesRemaining = *p.GuessesRemaining
	}
	if p.ShowHint != nil {
		o.ShowHint = *p.ShowHint
	}
	if p.Hint != nil {
		o.Hint = *p.Hint
	}
	return o, nil
}

// exactInt refuses JSON numbers that would not survive conversion to an int:
// fractions are truncated and out-of-range values wrap.
func exactInt(from, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	f, ok := data.(float64)
	if !ok || to.Kind() != reflect.Int {
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("integer %v out of range", f)
	}
	return data, nil
}
