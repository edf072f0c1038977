// Package schema validates raw, untrusted candidate records decoded from
// JSON and normalizes them into model types. All failure modes resolve to
// a FieldErrors value; nothing here panics on malformed input, so batch
// processing can always continue with the next item.
package schema

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/damage-control/damage-service/internal/model"
)

// FieldErrors is the list of human-readable field-level messages for one
// candidate record.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

// dateLayouts are the accepted dateReported string forms. Spreadsheet
// exports commonly drop the timezone or the time entirely.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// coerceDate accepts RFC 3339-ish strings or a JSON number holding Unix
// milliseconds.
func coerceDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	case float64:
		return time.UnixMilli(int64(d)).UTC(), true
	}
	return time.Time{}, false
}

// validAbsoluteURL reports whether s parses as a URL with both scheme and
// host.
func validAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// requiredString fetches obj[key] as a string, appending to errs when the
// key is missing or not a string. Empty strings are accepted.
func requiredString(obj map[string]any, key string, errs *FieldErrors) (string, bool) {
	v, present := obj[key]
	if !present || v == nil {
		*errs = append(*errs, key+" is required")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		*errs = append(*errs, key+" must be a string")
		return "", false
	}
	return s, true
}

// optionalString normalizes obj[key] to nil when absent, null or empty.
func optionalString(obj map[string]any, key string, errs *FieldErrors) *string {
	v, present := obj[key]
	if !present || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		*errs = append(*errs, key+" must be a string")
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

func parseCarrier(s string, errs *FieldErrors) model.Carrier {
	if !model.ValidCarrier(s) {
		*errs = append(*errs, fmt.Sprintf("unknown carrier %q", s))
	}
	return model.Carrier(s)
}

func parseService(s string, errs *FieldErrors) model.Service {
	if !model.ValidService(s) {
		*errs = append(*errs, fmt.Sprintf("unknown service %q", s))
	}
	return model.Service(s)
}

func parseProduto(s string, errs *FieldErrors) model.Produto {
	if !model.ValidProduto(s) {
		*errs = append(*errs, fmt.Sprintf("unknown produto %q", s))
	}
	return model.Produto(s)
}

// parseDamageTypes coerces v to a non-empty list of valid damage types.
// Duplicates are allowed and order is preserved.
func parseDamageTypes(v any, errs *FieldErrors) []model.DamageType {
	arr, ok := v.([]any)
	if !ok {
		*errs = append(*errs, "damageTypes must be an array")
		return nil
	}
	if len(arr) == 0 {
		*errs = append(*errs, "Select at least one damage type")
		return nil
	}
	out := make([]model.DamageType, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			*errs = append(*errs, "damageTypes must contain only strings")
			return nil
		}
		if !model.ValidDamageType(s) {
			*errs = append(*errs, fmt.Sprintf("unknown damage type %q", s))
			return nil
		}
		out = append(out, model.DamageType(s))
	}
	return out
}

// parseTicketURL normalizes the ticketUrl field: absent, null or "" is
// nil, anything else must be an absolute URL.
func parseTicketURL(obj map[string]any, errs *FieldErrors) *string {
	v, present := obj["ticketUrl"]
	if !present || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		*errs = append(*errs, "ticketUrl must be a string")
		return nil
	}
	if s == "" {
		return nil
	}
	if !validAbsoluteURL(s) {
		*errs = append(*errs, fmt.Sprintf("ticketUrl %q is not a valid URL", s))
		return nil
	}
	return &s
}
