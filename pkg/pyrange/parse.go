package pyrange

import (
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Parse reads a range in slice notation: "stop", "start:stop" or
// "start:stop:step". Integer element types take an integer step, floats
// an element typed step. All problems are reported together.
func Parse[N Number](s string) (Range[N], error) {
	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return Range[N]{}, field.ErrorList{
			field.TooMany(field.NewPath("range"), len(fields), 3),
		}.ToAggregate()
	}

	var errs field.ErrorList
	names := [...]string{"start", "stop", "step"}
	if len(fields) == 1 {
		names[0] = "stop"
	}
	vals := make([]N, len(fields))
	var step int
	for i, f := range fields {
		f = strings.TrimSpace(f)
		p := field.NewPath(names[i])
		if f == "" {
			errs = append(errs, field.Required(p, "must not be empty"))
			continue
		}
		if names[i] == "step" && !isFloat[N]() {
			v, err := strconv.ParseInt(f, 0, strconv.IntSize)
			switch {
			case err != nil:
				errs = append(errs, field.Invalid(p, f, err.Error()))
			case v == 0:
				errs = append(errs, field.Invalid(p, f, ErrZeroStep.Error()))
			case !fits[N](int(v)):
				errs = append(errs, field.Invalid(p, f, "step exceeds the range of the element type"))
			}
			step = int(v)
			continue
		}
		v, err := parseNumber[N](f)
		if err != nil {
			errs = append(errs, field.Invalid(p, f, err.Error()))
			continue
		}
		if names[i] == "step" && v == 0 {
			errs = append(errs, field.Invalid(p, f, ErrZeroStep.Error()))
		}
		vals[i] = v
	}
	if len(errs) > 0 {
		return Range[N]{}, errs.ToAggregate()
	}

	switch {
	case len(vals) == 1:
		return Upto(vals[0]), nil
	case len(vals) == 2:
		return Between(vals[0], vals[1]), nil
	case isFloat[N]():
		return Step(vals[0], vals[1], vals[2]), nil
	default:
		return StepInt(vals[0], vals[1], step), nil
	}
}

func parseNumber[N Number](s string) (N, error) {
	switch {
	case isFloat[N]():
		v, err := strconv.ParseFloat(s, 64)
		return N(v), err
	case isSigned[N]():
		v, err := strconv.ParseInt(s, 0, 64)
		if err == nil && int64(N(v)) != v {
			err = strconv.ErrRange
		}
		return N(v), err
	default:
		v, err := strconv.ParseUint(s, 0, 64)
		if err == nil && uint64(N(v)) != v {
			err = strconv.ErrRange
		}
		return N(v), err
	}
}
