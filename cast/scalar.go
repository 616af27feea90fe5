package cast

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	cferrors "github.com/randalmurphal/confkit/errors"
)

// String formats value as text. Nil becomes the empty string and byte
// slices are converted directly.
func String(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// Int converts value to an int. Floats must be integral.
func Int(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := strconv.ParseInt(fmt.Sprint(v), 10, 0)
		if err != nil {
			return nil, &cferrors.InvalidValueError{Value: value, Reason: "integer out of range"}
		}
		return int(n), nil
	case float32:
		return floatToInt(float64(v), value)
	case float64:
		return floatToInt(v, value)
	case json.Number:
		return parseInt(v.String(), value)
	case string:
		return parseInt(v, value)
	case []byte:
		return parseInt(string(v), value)
	default:
		return nil, &cferrors.InvalidValueError{Value: value, Reason: "not an integer"}
	}
}

func parseInt(s string, orig any) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return nil, &cferrors.InvalidValueError{Value: orig, Reason: "not an integer"}
	}
	return int(n), nil
}

func floatToInt(f float64, orig any) (any, error) {
	if f != math.Trunc(f) || f >= 1<<63 || f < -1<<63 {
		return nil, &cferrors.InvalidValueError{Value: orig, Reason: "not an integer"}
	}
	return int(f), nil
}

// Float converts value to a float64.
func Float(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return parseFloat(v.String(), value)
	case string:
		return parseFloat(v, value)
	case []byte:
		return parseFloat(string(v), value)
	default:
		return nil, &cferrors.InvalidValueError{Value: value, Reason: "not a number"}
	}
}

func parseFloat(s string, orig any) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, &cferrors.InvalidValueError{Value: orig, Reason: "not a number"}
	}
	return f, nil
}

// Duration converts value to a time.Duration. Strings use time.ParseDuration
// syntax ("1m30s"); integers are read as whole seconds.
func Duration(value any) (any, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return time.Duration(n) * time.Second, nil
		}
		return nil, &cferrors.InvalidValueError{Value: value, Reason: "not a duration"}
	default:
		n, err := Int(value)
		if err != nil {
			return nil, &cferrors.InvalidValueError{Value: value, Reason: "not a duration"}
		}
		return time.Duration(n.(int)) * time.Second, nil
	}
}
