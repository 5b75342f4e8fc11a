package validator

import (
	"encoding/json"
	"strings"
)

// Boolean never fails. It recognizes true and false, the strings
// "true"/"false"/"1"/"0" in any case, and the numbers 1 and 0.
// Anything else, including nil, yields def.
func Boolean(input any, field string, def bool) Result[bool] {
	switch v := input.(type) {
	case bool:
		return Ok(v)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1":
			return Ok(true)
		case "false", "0":
			return Ok(false)
		}
		return Ok(def)
	case json.Number:
		return Boolean(v.String(), field, def)
	}

	if n, empty, ok := numeric(input); ok && !empty {
		switch n {
		case 1:
			return Ok(true)
		case 0:
			return Ok(false)
		}
	}
	return Ok(def)
}
