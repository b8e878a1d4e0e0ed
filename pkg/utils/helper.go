package utils

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// UserIDFromEmail derives the profile id used when no auth id exists
func UserIDFromEmail(email string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(email)), "/", "_")
}

// ResolveUserID prefers the auth id and falls back to the email-derived id
func ResolveUserID(email, uid string) string {
	if uid != "" {
		return uid
	}
	return UserIDFromEmail(email)
}

// TimestampID returns a millisecond timestamp, used for promoted tours and
// local submissions that have no remote id yet
func TimestampID(now time.Time) int64 {
	return now.UnixMilli()
}

func TimestampIDString(now time.Time) string {
	return fmt.Sprintf("%d", TimestampID(now))
}

// ==================== PASSWORD ====================

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SecureCompare compares credentials in constant time
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
