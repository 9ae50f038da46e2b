package repository

import (
	"strconv"
	"strings"
)

const (
	walletPrefix   = "wallet:"
	positionPrefix = "position:"
	verifyPrefix   = "verify:"
)

func emailKey(email string) string {
	return email
}

func walletKey(address string) string {
	return walletPrefix + address
}

func positionKey(n int) string {
	return positionPrefix + strconv.Itoa(n)
}

func verifyKey(token string) string {
	return verifyPrefix + token
}

// IsUserKey reports whether key holds the primary (email-keyed) copy of a
// registration rather than an index entry or the wallet copy.
func IsUserKey(key string) bool {
	if !strings.Contains(key, "@") {
		return false
	}
	for _, p := range []string{positionPrefix, verifyPrefix, walletPrefix} {
		if strings.HasPrefix(key, p) {
			return false
		}
	}
	return true
}
