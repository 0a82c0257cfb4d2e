package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the accepted recommendation_date format.
const DateLayout = "2006-01-02"

const minTextLength = 10

// Validation messages, one per rule.
const (
	msgRequired     = "this field is required."
	msgTextTooShort = "must be at least 10 characters."
	msgRatingRange  = "must be an integer between 1 and 5."
	msgInvalidDate  = "must be a valid date."
	msgInvalidURL   = "must be a valid URL."
	msgInvalidEmail = "must be a valid email address."
)

var fieldChecker = validator.New()

// FieldErrors maps a field name to the messages it failed with.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Any reports whether at least one field failed.
func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// RecommendationInput is a validated, normalized recommendation payload
// ready for storage. All text fields are trimmed.
type RecommendationInput struct {
	RecommenderName     string
	RecommenderTitle    string
	RecommenderCompany  string
	RecommenderLocation string
	RecommendationText  string
	ProjectContext      string
	LinkedinURL         string
	Email               string
	Rating              int
	RecommendationDate  time.Time
}

// Recommendation validates a raw field map and returns either a normalized
// input or the per-field error messages. Fields are checked independently so
// every failing field is reported in one pass; there is no partial success.
func Recommendation(raw map[string]interface{}) (*RecommendationInput, FieldErrors) {
	errs := FieldErrors{}
	input := &RecommendationInput{}

	input.RecommenderName = requiredText(raw, "recommender_name", errs)
	input.RecommenderTitle = requiredText(raw, "recommender_title", errs)
	input.RecommenderCompany = requiredText(raw, "recommender_company", errs)
	input.RecommenderLocation = optionalText(raw, "recommender_location")
	input.ProjectContext = optionalText(raw, "project_context")

	if text := requiredText(raw, "recommendation_text", errs); text != "" {
		if len([]rune(text)) < minTextLength {
			errs.Add("recommendation_text", msgTextTooShort)
		} else {
			input.RecommendationText = text
		}
	}

	if rating, ok := intField(raw, "rating"); !ok {
		if isMissing(raw, "rating") {
			errs.Add("rating", msgRequired)
		} else {
			errs.Add("rating", msgRatingRange)
		}
	} else if rating < 1 || rating > 5 {
		errs.Add("rating", msgRatingRange)
	} else {
		input.Rating = rating
	}

	if dateStr := requiredText(raw, "recommendation_date", errs); dateStr != "" {
		date, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			errs.Add("recommendation_date", msgInvalidDate)
		} else {
			input.RecommendationDate = date
		}
	}

	if url := optionalText(raw, "linkedin_url"); url != "" {
		if fieldChecker.Var(url, "url") != nil {
			errs.Add("linkedin_url", msgInvalidURL)
		} else {
			input.LinkedinURL = url
		}
	}

	if email := optionalText(raw, "email"); email != "" {
		if fieldChecker.Var(email, "email") != nil {
			errs.Add("email", msgInvalidEmail)
		} else {
			input.Email = email
		}
	}

	if errs.Any() {
		return nil, errs
	}
	return input, nil
}

// requiredText extracts a trimmed text field, recording a required error when
// it is absent or blank. Returns "" on failure.
func requiredText(raw map[string]interface{}, field string, errs FieldErrors) string {
	text := optionalText(raw, field)
	if text == "" {
		errs.Add(field, msgRequired)
	}
	return text
}

// optionalText extracts a trimmed text field, treating absence and
// non-string values alike as empty.
func optionalText(raw map[string]interface{}, field string) string {
	v, ok := raw[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func isMissing(raw map[string]interface{}, field string) bool {
	v, ok := raw[field]
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}

// intField extracts an integer from the raw value. JSON decodes numbers as
// float64, so integral floats are accepted; numeric strings are parsed.
func intField(raw map[string]interface{}, field string) (int, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
