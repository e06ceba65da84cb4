package args

import (
	"crypto/md5"
	"encoding/hex"
)

// OfflineUUID derives a deterministic RFC 4122 v3 UUID from a username,
// matching the scheme the reference launcher uses when no authoritative
// identity is supplied: MD5("OfflinePlayer:"+name) with the version
// nibble forced to 3 and the variant nibble forced to RFC 4122.
func OfflineUUID(username string) string {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	sum[6] = sum[6]&0x0F | 0x30
	sum[8] = sum[8]&0x3F | 0x80

	hexStr := hex.EncodeToString(sum[:])
	return hexStr[0:8] + "-" + hexStr[8:12] + "-" + hexStr[12:16] + "-" + hexStr[16:20] + "-" + hexStr[20:32]
}
