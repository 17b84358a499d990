package utils

import "encoding/base64"

// DecodeB64 decodes digest and signature fields coming from Moera servers.
// The servers are not consistent about padding, so both variants are accepted.
func DecodeB64(str string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(str)
	}
	return data, err
}

// EncodeB64 is the inverse of DecodeB64, always producing the padded form.
func EncodeB64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
