// Package signature verifies inbound webhook payloads before anything else
// is allowed to touch them. Two trust sources exist: the hub's first-party
// HMAC-SHA1 signature, and the delivery broker's HMAC-SHA256 signature
// validated against a current/next signing-key pair (keys rotate, so a
// notification signed just before a rotation must still verify). All
// comparisons go through hmac.Equal; a short-circuiting string compare
// would leak the secret one byte at a time through response timing.
package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const hubSignaturePrefix = "sha1="

type Verifier struct {
	hubSecret        []byte
	brokerCurrentKey []byte
	brokerNextKey    []byte
}

func NewVerifier(hubSecret, brokerCurrentKey, brokerNextKey string) *Verifier {
	return &Verifier{
		hubSecret:        []byte(hubSecret),
		brokerCurrentKey: []byte(brokerCurrentKey),
		brokerNextKey:    []byte(brokerNextKey),
	}
}

// VerifyHub checks a "sha1=<hex>" header against the HMAC-SHA1 of the exact
// body bytes.
func (v *Verifier) VerifyHub(body []byte, header string) bool {
	if len(v.hubSecret) == 0 || header == "" {
		return false
	}

	mac := hmac.New(sha1.New, v.hubSecret)
	mac.Write(body)
	expected := hubSignaturePrefix + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(header))
}

// VerifyBroker checks a base64 HMAC-SHA256 header against the current
// signing key, then the next one.
func (v *Verifier) VerifyBroker(body []byte, header string) bool {
	if header == "" {
		return false
	}
	return v.verifyBrokerKey(v.brokerCurrentKey, body, header) ||
		v.verifyBrokerKey(v.brokerNextKey, body, header)
}

func (v *Verifier) verifyBrokerKey(key, body []byte, header string) bool {
	if len(key) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(header))
}
