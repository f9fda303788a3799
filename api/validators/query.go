package validators

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/minjipark/tteokbang-backend/internal/production"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/hangul"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQueryDay reads a required "YYYY-MM-DD" query parameter.
func ParseQueryDay(r *http.Request, key string) (production.Day, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return production.Day{}, pkgerrors.New(pkgerrors.CodeValidation, "date parameter required").WithDetails(map[string]any{"field": key})
	}
	day, err := production.ParseDay(raw)
	if err != nil {
		return production.Day{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date").WithDetails(map[string]any{"field": key})
	}
	return day, nil
}

// ParseQueryInitial reads a single Korean initial consonant (ㄱ..ㅎ).
func ParseQueryInitial(r *http.Request, key string) (rune, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "initial parameter required").WithDetails(map[string]any{"field": key})
	}
	initial, size := utf8.DecodeRuneInString(raw)
	if size != len(raw) || !hangul.IsInitial(initial) {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "must be a single Korean initial consonant").WithDetails(map[string]any{"field": key})
	}
	return initial, nil
}

// ParseQueryIDs reads an optional comma-separated list of positive IDs.
func ParseQueryIDs(r *http.Request, key string) ([]int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "ids must be positive integers").WithDetails(map[string]any{"field": key})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PathID parses a positive integer path segment already extracted by the router.
func PathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid id")
	}
	return id, nil
}
