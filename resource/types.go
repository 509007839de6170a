package resource

import (
	"fmt"
	"strings"
)

type Type uint8

const (
	TypeView Type = iota
	TypePic
	TypeScript
	TypeText
	TypeSound
	TypeMemory
	TypeVocab
	TypeFont
	TypeCursor
	TypePatch
)

var typeNames = [...]string{
	TypeView:   "View",
	TypePic:    "Pic",
	TypeScript: "Script",
	TypeText:   "Text",
	TypeSound:  "Sound",
	TypeMemory: "Memory",
	TypeVocab:  "Vocab",
	TypeFont:   "Font",
	TypeCursor: "Cursor",
	TypePatch:  "Patch",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return "Type(" + typeNames[t] + ")"
	}
	return "Type(UNKNOWN)"
}

// ParseType accepts a type name in any case, e.g. "pic".
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if strings.EqualFold(n, name) {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("unknown resource type %q", name)
}
