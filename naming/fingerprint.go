package naming

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
)

// fingerprintVersion is the version of the put-call fingerprint layout.
const fingerprintVersion = 0

// putCallFingerprint builds the canonical byte string a put call is signed
// over. The layout is deterministic: numbers are 8-byte big-endian, strings
// and blobs are length-prefixed with a 4-byte big-endian count. A nil blob
// encodes as a zero length. The previous digest at the end chains the new
// state to the exact observed snapshot, which is what makes a stale write
// detectable.
func putCallFingerprint(
	name string,
	generation int,
	updatingKey []byte,
	nodeURI string,
	signingKey []byte,
	validFrom Timestamp,
	previousDigest []byte,
) []byte {
	buf := &bytes.Buffer{}
	fpNumber(buf, fingerprintVersion)
	fpBytes(buf, []byte(name))
	fpNumber(buf, int64(generation))
	fpBytes(buf, updatingKey)
	fpBytes(buf, []byte(nodeURI))
	fpBytes(buf, signingKey)
	fpNumber(buf, validFrom)
	fpBytes(buf, previousDigest)
	return buf.Bytes()
}

func fpNumber(buf *bytes.Buffer, n int64) {
	_ = binary.Write(buf, binary.BigEndian, n)
}

func fpBytes(buf *bytes.Buffer, data []byte) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
}

// recordDigest is the digest of a record state: SHA-256 over its
// fingerprint.
func recordDigest(fingerprint []byte) []byte {
	digest := sha256.Sum256(fingerprint)
	return digest[:]
}
