package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hubSign(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

func brokerSign(key string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyHub_ValidSignature(t *testing.T) {
	v := NewVerifier("hub-secret", "", "")
	body := []byte(`<feed><entry>payload</entry></feed>`)

	assert.True(t, v.VerifyHub(body, hubSign("hub-secret", body)))
}

func TestVerifyHub_FlippedPayloadByte(t *testing.T) {
	v := NewVerifier("hub-secret", "", "")
	body := []byte(`<feed><entry>payload</entry></feed>`)
	sig := hubSign("hub-secret", body)

	tampered := append([]byte(nil), body...)
	tampered[0] ^= 0x01

	assert.False(t, v.VerifyHub(tampered, sig))
}

func TestVerifyHub_FlippedSignatureByte(t *testing.T) {
	v := NewVerifier("hub-secret", "", "")
	body := []byte(`<feed><entry>payload</entry></feed>`)

	sig := []byte(hubSign("hub-secret", body))
	if sig[len(sig)-1] == 'a' {
		sig[len(sig)-1] = 'b'
	} else {
		sig[len(sig)-1] = 'a'
	}

	assert.False(t, v.VerifyHub(body, string(sig)))
}

func TestVerifyHub_NoSecretOrHeader(t *testing.T) {
	body := []byte("body")

	assert.False(t, NewVerifier("", "", "").VerifyHub(body, hubSign("x", body)))
	assert.False(t, NewVerifier("hub-secret", "", "").VerifyHub(body, ""))
}

func TestVerifyHub_WrongSecret(t *testing.T) {
	v := NewVerifier("hub-secret", "", "")
	body := []byte("body")

	assert.False(t, v.VerifyHub(body, hubSign("other-secret", body)))
}

func TestVerifyBroker_CurrentKey(t *testing.T) {
	v := NewVerifier("", "current-key", "next-key")
	body := []byte("notification body")

	assert.True(t, v.VerifyBroker(body, brokerSign("current-key", body)))
}

func TestVerifyBroker_NextKeyAfterRotation(t *testing.T) {
	v := NewVerifier("", "current-key", "next-key")
	body := []byte("notification body")

	assert.True(t, v.VerifyBroker(body, brokerSign("next-key", body)))
}

func TestVerifyBroker_UnknownKey(t *testing.T) {
	v := NewVerifier("", "current-key", "next-key")
	body := []byte("notification body")

	assert.False(t, v.VerifyBroker(body, brokerSign("rogue-key", body)))
	assert.False(t, v.VerifyBroker(body, ""))
}
