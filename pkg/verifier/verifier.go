package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrHashDoesNotMatch                = errors.New("Invalid Signature - Hash does not match")
	ErrCannotDecodeHexEncodedMACHeader = errors.New("Cannot decode hex encoded MAC header")
	ErrSignatureCannotBeEmpty          = errors.New("Signature cannot be empty")
)

type Verifier interface {
	VerifyRequest(r *http.Request, payload []byte) error
}

type HmacOptions struct {
	Header       string
	GetSignature func(string) string
	Secret       string
}

type HmacVerifier struct {
	opts *HmacOptions
}

func NewHmacVerifier(opts *HmacOptions) *HmacVerifier {
	return &HmacVerifier{opts}
}

func (hV *HmacVerifier) VerifyRequest(r *http.Request, payload []byte) error {
	signature := r.Header.Get(hV.opts.Header)

	if hV.opts.GetSignature != nil {
		signature = hV.opts.GetSignature(signature)
	}

	return hV.verify(signature, payload)
}

func (hV *HmacVerifier) verify(signature string, payload []byte) error {
	if len(strings.TrimSpace(signature)) == 0 {
		return ErrSignatureCannotBeEmpty
	}

	mac := hmac.New(sha256.New, []byte(hV.opts.Secret))
	mac.Write(payload)
	computedMAC := mac.Sum(nil)

	sentMAC, err := hex.DecodeString(signature)
	if err != nil {
		return ErrCannotDecodeHexEncodedMACHeader
	}

	if !hmac.Equal(sentMAC, computedMAC) {
		return ErrHashDoesNotMatch
	}

	return nil
}

// GithubVerifier checks the X-Hub-Signature-256 header GitHub attaches
// to webhook deliveries: an HMAC-SHA256 of the raw body, hex encoded
// and prefixed with "sha256=".
type GithubVerifier struct {
	HmacOpts *HmacOptions
}

func NewGithubVerifier(secret string) *GithubVerifier {
	gv := &GithubVerifier{}
	gv.HmacOpts = &HmacOptions{
		Header:       "X-Hub-Signature-256",
		GetSignature: gv.getSignature,
		Secret:       secret,
	}

	return gv
}

func (gV *GithubVerifier) VerifyRequest(r *http.Request, payload []byte) error {
	v := HmacVerifier{gV.HmacOpts}
	return v.VerifyRequest(r, payload)
}

// VerifyHeader checks a presented signature header value directly,
// without an http.Request. Returns false on a missing header, a
// malformed prefix, or a mismatch; it never panics.
func (gV *GithubVerifier) VerifyHeader(payload []byte, signatureHeader string) bool {
	v := HmacVerifier{gV.HmacOpts}
	return v.verify(gV.getSignature(signatureHeader), payload) == nil
}

func (gV *GithubVerifier) getSignature(sig string) string {
	values := strings.Split(sig, "sha256=")
	if len(values) < 2 {
		return ""
	}

	return values[1]
}

// Sign produces the header value GitHub would send for payload; used
// by tests and the registration flow's delivery self-check.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
