package movement

import (
	"errors"
	"math"

	"stocksentry/internal/model"
)

// ErrNoQuote is returned when a movement is requested for a quote that has
// no usable prices.
var ErrNoQuote = errors.New("quote has no usable prices")

// Evaluate derives the percent and absolute change of a quote against its
// session open. Defined only for StatusOk quotes; a zero open is rejected
// rather than divided by, even though Ok quotes should never carry one.
func Evaluate(q model.Quote) (model.Movement, error) {
	if q.Status != model.StatusOk {
		return model.Movement{}, ErrNoQuote
	}
	if q.Open == 0 {
		return model.Movement{}, ErrNoQuote
	}
	abs := q.Current - q.Open
	return model.Movement{
		Percent:  Round2(abs / q.Open * 100),
		Absolute: Round2(abs),
	}, nil
}

// Round2 rounds to 2 decimal places, the display and comparison precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
