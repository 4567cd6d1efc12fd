package randomname

import (
	"crypto/md5"
	"encoding/base64"
	"math/rand/v2"
	"strings"
	"time"
)

// seedLetters is the number of random lowercase letters mixed into the token seed.
const seedLetters = 50

var tokenReplacer = strings.NewReplacer("/", "x", "+", "y", "=", "")

// Token returns an opaque 22-character identifier drawn from [A-Za-z0-9].
// It hashes the current time and random letters, so it is only an obfuscated
// name and must not be used as a secret.
func Token() string {
	return tokenFrom(time.Now(), randomLetters(seedLetters))
}

func tokenFrom(now time.Time, letters string) string {
	sum := md5.Sum([]byte(now.Format(time.RFC3339Nano) + "-" + letters))
	return strings.TrimSpace(tokenReplacer.Replace(base64.StdEncoding.EncodeToString(sum[:])))
}

func randomLetters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rand.IntN(26))
	}
	return string(b)
}
