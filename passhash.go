package cityhall

import (
	"crypto/md5"
	"encoding/hex"
)

// HashPassword turns a cleartext password into the digest City Hall expects
// on the wire: the MD5 sum of its bytes as lowercase hex. An empty cleartext
// maps to an empty digest, not to the hash of the empty string; the server
// treats blank passwords literally.
func HashPassword(password string) string {
	if password == "" {
		return ""
	}

	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
