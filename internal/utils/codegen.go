package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomCode(length int) string {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			out[i] = codeAlphabet[0]
			continue
		}
		out[i] = codeAlphabet[n.Int64()]
	}
	return string(out)
}

// GenerateStoreCode returns a code like BAR_7K2M9QX1.
func GenerateStoreCode() string {
	return "BAR_" + randomCode(8)
}

// GenerateEmployeeCode returns a code like BAR_7K2M9QX1_EMP0042.
func GenerateEmployeeCode(storeCode string, sequence int) string {
	return fmt.Sprintf("%s_EMP%04d", storeCode, sequence)
}

// GenerateInviteCode returns a URL-safe token for employee invitations.
func GenerateInviteCode() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return base64.RawURLEncoding.EncodeToString([]byte(randomCode(24)))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
