package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/token"
)

// parseFileChecksum claims the rightmost free token that is exactly 8 ASCII
// hex digits (the CRC32 fansub checksums conventionally carry in brackets).
func parseFileChecksum(tokens token.List) (element.Element, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		t := &tokens[i]
		if !t.IsFree() || !isHex8(t.Value) {
			continue
		}
		t.MarkKnown()
		return element.New(element.FileChecksum, t.Value, t.Position), true
	}
	return element.Element{}, false
}

func isHex8(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
