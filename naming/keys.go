package naming

import (
	"bytes"
	"os"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/signature"
	"github.com/google/tink/go/tink"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Administrator credentials are Tink keysets kept in cleartext JSON files.
// The file is the operator's responsibility; the tools only read and write
// it at the paths given in the configuration.

// LoadKeys reads a signing keyset from the given file.
func LoadKeys(path string) (h *keyset.Handle, err error) {
	defer err2.Handle(&err, "load keys %s", path)

	f := try.To1(os.Open(path))
	defer func() { _ = f.Close() }()

	return insecurecleartextkeyset.Read(keyset.NewJSONReader(f))
}

// GenerateKeys creates a fresh ED25519 signing keyset and stores it into the
// given file, which must not exist yet. Used when rotating record
// credentials.
func GenerateKeys(path string) (h *keyset.Handle, err error) {
	defer err2.Handle(&err, "generate keys %s", path)

	h = try.To1(keyset.NewHandle(signature.ED25519KeyTemplate()))

	f := try.To1(os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600))
	defer func() { _ = f.Close() }()

	try.To(insecurecleartextkeyset.Write(h, keyset.NewJSONWriter(f)))
	return h, nil
}

// NewSigner returns the signer primitive of the keyset.
func NewSigner(h *keyset.Handle) (tink.Signer, error) {
	return signature.NewSigner(h)
}

// PublicKeyBytes exports the public part of the keyset as an opaque blob the
// naming server stores in the record and verifies signatures against.
func PublicKeyBytes(h *keyset.Handle) (key []byte, err error) {
	defer err2.Handle(&err, "export public key")

	pub := try.To1(h.Public())
	buf := &bytes.Buffer{}
	try.To(pub.WriteWithNoSecrets(keyset.NewBinaryWriter(buf)))
	return buf.Bytes(), nil
}
