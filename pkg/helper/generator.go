package helper

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cast"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomDigits returns n decimal digits. The first one is never zero so the
// result keeps its width when parsed as a number.
func RandomDigits(n int) string {
	if n <= 0 {
		return ""
	}

	rngMu.Lock()
	defer rngMu.Unlock()

	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

// GenerateCertificateNumber returns e.g. "CERT-2026-48213377".
func GenerateCertificateNumber(now time.Time) string {
	return "CERT-" + cast.ToString(now.Year()) + "-" + RandomDigits(8)
}
