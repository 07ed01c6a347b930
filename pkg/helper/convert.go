package helper

import (
	"encoding/json"

	"rmu/credit_bank_service/pkg/listquery"

	"github.com/spf13/cast"
)

func MarshalToStruct(data any, resp any) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	err = json.Unmarshal(js, resp)
	if err != nil {
		return err
	}

	return nil
}

// ToParams flattens a JSON-shaped request body into list query params, so a
// POST filter body runs through the same filter definitions as a query string.
func ToParams(body any) (listquery.Params, error) {
	raw := map[string]any{}
	if err := MarshalToStruct(body, &raw); err != nil {
		return nil, err
	}

	params := make(listquery.Params, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		params[k] = cast.ToString(v)
	}

	return params, nil
}
