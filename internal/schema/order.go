package schema

import "github.com/damage-control/damage-service/internal/model"

// ParseInsertOrder validates one raw order candidate. Orders carry no
// optional fields; dateImported is assigned by the store, so a value in
// the input is ignored rather than rejected.
func ParseInsertOrder(raw any) (*model.InsertOrder, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{"expected a JSON object"}
	}

	var errs FieldErrors
	ins := &model.InsertOrder{}

	if s, ok := requiredString(obj, "trackingNumber", &errs); ok {
		ins.TrackingNumber = s
	}
	if s, ok := requiredString(obj, "orderNumber", &errs); ok {
		ins.OrderNumber = s
	}
	if s, ok := requiredString(obj, "produto", &errs); ok {
		ins.Produto = parseProduto(s, &errs)
	}
	if s, ok := requiredString(obj, "carrier", &errs); ok {
		ins.Carrier = parseCarrier(s, &errs)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return ins, nil
}
