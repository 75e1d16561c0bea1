package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(7, "tester", 2, false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifySessionToken(token)
	require.NoError(t, err)
	require.Equal(t, int32(7), claims.PlayerID)
	require.Equal(t, "tester", claims.PlayerName)
	require.Equal(t, int32(2), claims.Station)
	require.False(t, claims.LagCompensation)
	require.Equal(t, tokenIssuer, claims.Issuer)
}

func TestVerifySessionTokenRejectsGarbage(t *testing.T) {
	_, err := VerifySessionToken("not-a-token")
	require.Error(t, err)
}

func TestVerifySessionTokenRejectsTampered(t *testing.T) {
	token, err := GenerateSessionToken(1, "tester", 0, true)
	require.NoError(t, err)

	// 篡改末尾签名字节
	tampered := token[:len(token)-2] + "xx"
	_, err = VerifySessionToken(tampered)
	require.Error(t, err)
}

func TestPrefsStoreDefaults(t *testing.T) {
	s := NewPrefsStore()

	// 未设置过默认启用补偿
	require.True(t, s.LagCompensation("alice"))
	require.False(t, s.Has("alice"))

	s.SetLagCompensation("alice", false)
	require.True(t, s.Has("alice"))
	require.False(t, s.LagCompensation("alice"))

	s.SetLagCompensation("alice", true)
	require.True(t, s.LagCompensation("alice"))
}
