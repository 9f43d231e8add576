package freebox

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
)

// password answers a login challenge: hex(HMAC-SHA1(app_token, challenge)).
func password(appToken, challenge string) string {
	mac := hmac.New(sha1.New, []byte(appToken))
	mac.Write([]byte(challenge))
	return hex.EncodeToString(mac.Sum(nil))
}
