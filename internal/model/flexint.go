package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that may arrive as a JSON number or as a JSON string
// holding a base-10 integer. Clients send category ids both ways; both
// normalize to the same value. JSON null leaves the value unchanged.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}

	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
