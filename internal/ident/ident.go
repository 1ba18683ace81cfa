// Package ident namespaces provider-native IDs under an account so that
// repeated syncs are idempotent upserts and two providers reusing the same
// numeric ID never collide.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
)

// Separator never legitimately appears inside a remote ID suffix; composite
// IDs are split on its last occurrence.
const Separator = "$"

// Compose builds the composite identity for a remote ID under an account.
func Compose(accountID int64, remoteID string) string {
	return strconv.FormatInt(accountID, 10) + Separator + remoteID
}

// Remote returns the remote ID part of a composite identity. A malformed ID
// without a separator is returned unchanged.
func Remote(compositeID string) string {
	i := strings.LastIndex(compositeID, Separator)
	if i < 0 {
		return compositeID
	}
	return compositeID[i+len(Separator):]
}

// AccountOf returns the account prefix of a composite identity, or 0 when the
// ID is malformed.
func AccountOf(compositeID string) int64 {
	i := strings.LastIndex(compositeID, Separator)
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseInt(compositeID[:i], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// NewLocal mints a composite identity from a random token, for entities the
// generic provider creates without any remote counterpart.
func NewLocal(accountID int64) string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return Compose(accountID, hex.EncodeToString(b[:]))
}
