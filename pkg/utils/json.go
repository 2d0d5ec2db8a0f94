package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson indenta um payload para inspeção em logs de debug. Aceita um
// []byte já serializado ou qualquer valor serializável.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			return err.Error()
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
