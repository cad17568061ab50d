// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"reflect"

	"go.mozilla.org/pkcs7"
)

// SignerInfo wraps the fields of a pkcs7 signer that matter to a caller
// inspecting an Xcode build-log attachment: the certificate issuer and
// the serial number that ties a signature back to a specific signing
// identity.
type SignerInfo struct {
	Issuer       string `json:"issuer"`
	SerialNumber string `json:"serialNumber"`
}

// candidateSignatureFields are the JSON object keys observed to carry a
// base64-encoded DER blob inside attachment payloads emitted for
// codesigning build steps (e.g. embedded provisioning profiles, which
// are themselves PKCS#7-signed plists).
var candidateSignatureFields = []string{"signature", "cms", "provisioningProfile", "data"}

// ExtractSigners sniffs an attachment's Extra JSON payload for an
// embedded PKCS#7 blob and, if one is found and parses cleanly, returns
// the signer identities it carries. It returns (nil, nil) whenever the
// payload doesn't look like signed content — attachments carrying plain
// text, numbers, or unrelated JSON are the common case, and this is not
// an error.
func ExtractSigners(a *Attachment) ([]SignerInfo, error) {
	if a == nil || len(a.Extra) == 0 {
		return nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(a.Extra, &obj); err != nil {
		return nil, nil
	}

	for _, field := range candidateSignatureFields {
		raw, ok := obj[field]
		if !ok {
			continue
		}
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			continue
		}
		der, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}
		p7, err := pkcs7.Parse(der)
		if err != nil {
			continue
		}
		return signersOf(p7), nil
	}
	return nil, nil
}

// signersOf matches each signer's serial number against the embedded
// certificate chain to recover a human-readable issuer, the same
// indirection the teacher's own Authenticode parsing uses since the
// signerInfo type itself exposes little beyond the raw serial number.
func signersOf(p7 *pkcs7.PKCS7) []SignerInfo {
	var signers []SignerInfo
	for _, s := range p7.Signers {
		serial := s.IssuerAndSerialNumber.SerialNumber
		for _, cert := range p7.Certificates {
			if !reflect.DeepEqual(cert.SerialNumber, serial) {
				continue
			}
			issuer := cert.Issuer.CommonName
			if len(cert.Issuer.Organization) > 0 {
				issuer = cert.Issuer.Organization[0] + ", " + issuer
			}
			signers = append(signers, SignerInfo{
				Issuer:       issuer,
				SerialNumber: hex.EncodeToString(cert.SerialNumber.Bytes()),
			})
			break
		}
	}
	return signers
}
