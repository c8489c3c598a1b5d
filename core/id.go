package core

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// ID is a backend record identifier. The backend serializes ids either as strings or as numbers.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decoding ID")
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decoding ID")
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
