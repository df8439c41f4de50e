// Package normalizer turns decoded JSON payloads into typed actress records.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"actresses/internal/models"
)

// Validation errors.
var (
	ErrNotObject    = errors.New("invalid data type: expected JSON object")
	ErrMissingField = errors.New("missing field")
	ErrWrongType    = errors.New("wrong field type")
	ErrMovieCount   = errors.New("most_famous_movies must hold exactly 3 titles")
)

// maxSafeInt bounds the integers a float64 represents exactly.
const maxSafeInt = 1 << 53

// Validator checks that decoded JSON has the Actress shape.
type Validator struct {
	// OptionalDeathYear accepts records without a death_year key.
	// A present death_year must still be a number.
	OptionalDeathYear bool
}

// NewValidator creates a strict validator: death_year is required.
func NewValidator() *Validator {
	return &Validator{}
}

var strict = NewValidator()

// IsActress reports whether data is a JSON object with every Actress field
// present and correctly typed. death_year is required.
func IsActress(data any) bool {
	return strict.Validate(data) == nil
}

// Validate returns the first failed check, or nil when data has the Actress shape.
func (v *Validator) Validate(data any) error {
	obj, ok := data.(map[string]any)
	if !ok || obj == nil {
		return ErrNotObject
	}

	if _, err := intField(obj, "id"); err != nil {
		return err
	}

	if _, err := stringField(obj, "name"); err != nil {
		return err
	}

	if _, err := intField(obj, "birth_year"); err != nil {
		return err
	}

	if _, present := obj["death_year"]; present || !v.OptionalDeathYear {
		if _, err := intField(obj, "death_year"); err != nil {
			return err
		}
	}

	if _, err := stringField(obj, "biography"); err != nil {
		return err
	}

	if _, err := stringField(obj, "image"); err != nil {
		return err
	}

	if _, err := moviesField(obj); err != nil {
		return err
	}

	if _, err := stringField(obj, "awards"); err != nil {
		return err
	}

	if _, err := stringField(obj, "nationality"); err != nil {
		return err
	}

	return nil
}

func stringField(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %s", ErrWrongType, key, jsonKind(raw))
	}

	return s, nil
}

func intField(obj map[string]any, key string) (int, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	n, ok := asInt(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be an integer number, got %s", ErrWrongType, key, jsonKind(raw))
	}

	return n, nil
}

func moviesField(obj map[string]any) ([models.MovieCount]string, error) {
	var movies [models.MovieCount]string

	raw, ok := obj["most_famous_movies"]
	if !ok {
		return movies, fmt.Errorf("%w: most_famous_movies", ErrMissingField)
	}

	list, ok := raw.([]any)
	if !ok {
		return movies, fmt.Errorf("%w: most_famous_movies must be an array, got %s", ErrWrongType, jsonKind(raw))
	}

	if len(list) != models.MovieCount {
		return movies, fmt.Errorf("%w: got %d", ErrMovieCount, len(list))
	}

	for i, item := range list {
		title, ok := item.(string)
		if !ok {
			return movies, fmt.Errorf("%w: most_famous_movies[%d] must be a string, got %s", ErrWrongType, i, jsonKind(item))
		}

		movies[i] = title
	}

	return movies, nil
}

// asInt accepts the number representations produced by encoding/json.
func asInt(v any) (int, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			if i > maxSafeInt || i < -maxSafeInt {
				return 0, false
			}

			return int(i), true
		}

		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}

		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f > maxSafeInt || f < -maxSafeInt {
		return 0, false
	}

	return int(f), true
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
