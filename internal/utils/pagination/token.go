package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetPrefix = "offset:"

// EncodeOffsetToken creates an opaque base64 token pointing at position offset of a list.
// Statements are append-only, so an offset stays valid between requests.
func EncodeOffsetToken(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(offsetPrefix + strconv.Itoa(offset)))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken. An empty token means offset 0.
func DecodeOffsetToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	if !strings.HasPrefix(tokenStr, offsetPrefix) {
		return 0, fmt.Errorf("invalid pagination token format (prefix)")
	}
	offset, err := strconv.Atoi(strings.TrimPrefix(tokenStr, offsetPrefix))
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative offset)")
	}
	return offset, nil
}

// Page returns the window [offset, offset+limit) of items and the token for the next window,
// which is empty when no items remain.
func Page[T any](items []T, offset, limit int) ([]T, string) {
	if offset >= len(items) {
		return []T{}, ""
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	next := ""
	if end < len(items) {
		next = EncodeOffsetToken(end)
	}
	return items[offset:end], next
}
