package migrator

import (
	"fmt"
)

// colourHex converts a 32-bit ARGB colour integer from the export format to
// the target notation: "0xff" plus the low 24 bits as lowercase hex.
// Negative inputs are two's complement encoded, e.g. -1 -> "0xffffffff".
func colourHex(c int64) string {
	return fmt.Sprintf("0xff%06x", uint32(c)&0xffffff)
}
