package auth

import (
	"time"

	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

const refreshTokenBytes = 32

// issueTokenPair mints an access JWT for userID and a fresh single-use
// refresh token, recording the latter in the store.
func issueTokenPair(tokens *store.RefreshTokenStore, userID, secret string, jwtTTLHrs, refreshTTLHrs int) (access, refresh string, err error) {
	access, err = utils.GenerateJWT(userID, secret, jwtTTLHrs)
	if err != nil {
		return "", "", err
	}

	refresh, err = utils.RandomTokenHex(refreshTokenBytes)
	if err != nil {
		return "", "", err
	}
	tokens.Save(refresh, userID, time.Now().Add(time.Duration(refreshTTLHrs)*time.Hour))

	return access, refresh, nil
}
