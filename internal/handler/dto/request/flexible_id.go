package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"meeting-rooms/internal/pkg/errs"
)

// FlexibleID decodes a JSON number or a numeric string. null and "" decode to zero.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errs.Wrap(err, "id must be a number")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*id = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errs.Newf("id %q is not a number", s)
		}
		*id = FlexibleID(n)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errs.Wrap(err, "id must be a number")
	}
	v, err := n.Int64()
	if err != nil {
		return errs.Newf("id %s is not an integer", n)
	}
	*id = FlexibleID(v)
	return nil
}

func (id FlexibleID) Int64() int64 {
	return int64(id)
}
