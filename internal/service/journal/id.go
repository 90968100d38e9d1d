package journal

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const (
	idSuffixLen = 9
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewID mints "{ms-epoch}-{9 base36 chars}". IDs are opaque and compared by
// string equality only.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(now time.Time) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, now.UnixMilli(), 10)
	buf = append(buf, '-')

	limit := big.NewInt(int64(len(base36)))
	for range idSuffixLen {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		buf = append(buf, base36[n.Int64()])
	}
	return string(buf)
}
