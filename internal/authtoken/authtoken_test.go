package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	iss := NewIssuer("test-secret")
	now := time.Unix(1_700_000_000, 0)

	tok, err := iss.Issue("0xabc", now)
	require.NoError(t, err)

	wallet, err := iss.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "0xabc", wallet)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	iss := NewIssuer("test-secret")

	// jwt-go validates exp against wall-clock time, so a token stamped far
	// enough in the past is rejected regardless of when Verify runs.
	longAgo := time.Now().Add(-2 * TTL)
	expired, err := iss.Issue("0xabc", longAgo)
	require.NoError(t, err)

	_, err = iss.Verify(expired)
	require.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	iss := NewIssuer("secret-a")
	other := NewIssuer("secret-b")

	tok, err := iss.Issue("0xabc", time.Now())
	require.NoError(t, err)

	_, err = other.Verify(tok)
	require.Error(t, err)
}
