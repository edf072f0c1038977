package schema

import (
	"fmt"

	"github.com/damage-control/damage-service/internal/model"
)

// ParseInsertTicket validates one raw candidate against the ticket schema
// and returns the normalized record, or a FieldErrors listing every
// violation found.
func ParseInsertTicket(raw any) (*model.InsertTicket, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{"expected a JSON object"}
	}

	var errs FieldErrors
	ins := &model.InsertTicket{}

	if s, ok := requiredString(obj, "ticketId", &errs); ok {
		ins.TicketID = s
	}
	if s, ok := requiredString(obj, "orderNumber", &errs); ok {
		ins.OrderNumber = s
	}
	if s, ok := requiredString(obj, "trackingNumber", &errs); ok {
		ins.TrackingNumber = s
	}
	if s, ok := requiredString(obj, "carrier", &errs); ok {
		ins.Carrier = parseCarrier(s, &errs)
	}
	if s, ok := requiredString(obj, "service", &errs); ok {
		ins.Service = parseService(s, &errs)
	}
	if s, ok := requiredString(obj, "produto", &errs); ok {
		ins.Produto = parseProduto(s, &errs)
	}

	ins.TicketURL = parseTicketURL(obj, &errs)

	if v, present := obj["damageTypes"]; present && v != nil {
		ins.DamageTypes = parseDamageTypes(v, &errs)
	} else {
		errs = append(errs, "damageTypes is required")
	}

	if v, present := obj["dateReported"]; present && v != nil {
		if t, ok := coerceDate(v); ok {
			ins.DateReported = t
		} else {
			errs = append(errs, fmt.Sprintf("dateReported %v is not a valid date", v))
		}
	} else {
		errs = append(errs, "dateReported is required")
	}

	ins.Observations = optionalString(obj, "observations", &errs)
	ins.Notes = optionalString(obj, "notes", &errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return ins, nil
}

// ParseTicketPatch validates a partial update. Only keys present in the
// request are validated and carried; unknown keys are ignored. A present
// key gets the same per-field rules as create, so a present-but-empty
// damageTypes is still rejected.
func ParseTicketPatch(raw any) (*model.TicketPatch, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{"expected a JSON object"}
	}

	var errs FieldErrors
	patch := &model.TicketPatch{}

	if v, present := obj["ticketId"]; present && v != nil {
		if s, ok := v.(string); ok {
			patch.TicketID = &s
		} else {
			errs = append(errs, "ticketId must be a string")
		}
	}
	if v, present := obj["orderNumber"]; present && v != nil {
		if s, ok := v.(string); ok {
			patch.OrderNumber = &s
		} else {
			errs = append(errs, "orderNumber must be a string")
		}
	}
	if v, present := obj["trackingNumber"]; present && v != nil {
		if s, ok := v.(string); ok {
			patch.TrackingNumber = &s
		} else {
			errs = append(errs, "trackingNumber must be a string")
		}
	}
	if v, present := obj["carrier"]; present && v != nil {
		if s, ok := v.(string); ok {
			c := parseCarrier(s, &errs)
			patch.Carrier = &c
		} else {
			errs = append(errs, "carrier must be a string")
		}
	}
	if v, present := obj["service"]; present && v != nil {
		if s, ok := v.(string); ok {
			sv := parseService(s, &errs)
			patch.Service = &sv
		} else {
			errs = append(errs, "service must be a string")
		}
	}
	if v, present := obj["produto"]; present && v != nil {
		if s, ok := v.(string); ok {
			p := parseProduto(s, &errs)
			patch.Produto = &p
		} else {
			errs = append(errs, "produto must be a string")
		}
	}
	if v, present := obj["ticketUrl"]; present && v != nil {
		if s, ok := v.(string); ok {
			if s != "" && !validAbsoluteURL(s) {
				errs = append(errs, fmt.Sprintf("ticketUrl %q is not a valid URL", s))
			} else {
				// "" clears the field back to null.
				patch.TicketURL = &s
			}
		} else {
			errs = append(errs, "ticketUrl must be a string")
		}
	}
	if v, present := obj["damageTypes"]; present && v != nil {
		patch.DamageTypes = parseDamageTypes(v, &errs)
	}
	if v, present := obj["dateReported"]; present && v != nil {
		if t, ok := coerceDate(v); ok {
			patch.DateReported = &t
		} else {
			errs = append(errs, fmt.Sprintf("dateReported %v is not a valid date", v))
		}
	}
	if v, present := obj["observations"]; present && v != nil {
		if s, ok := v.(string); ok {
			patch.Observations = &s
		} else {
			errs = append(errs, "observations must be a string")
		}
	}
	if v, present := obj["notes"]; present && v != nil {
		if s, ok := v.(string); ok {
			patch.Notes = &s
		} else {
			errs = append(errs, "notes must be a string")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return patch, nil
}
