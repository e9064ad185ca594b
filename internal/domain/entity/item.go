package entity

import (
	"fmt"
	"strings"
)

// ItemKind selects one of the two parallel inventory tables.
type ItemKind string

const (
	KindStorage ItemKind = "storage"
	KindAccount ItemKind = "account"
)

// Kinds lists every inventory kind, in the order startup maintenance walks them.
func Kinds() []ItemKind {
	return []ItemKind{KindStorage, KindAccount}
}

func ParseItemKind(s string) (ItemKind, error) {
	switch ItemKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindStorage:
		return KindStorage, nil
	case KindAccount:
		return KindAccount, nil
	}
	return "", fmt.Errorf("unknown item kind %q", s)
}

func (k ItemKind) String() string {
	return string(k)
}

// Item is one distributable inventory record. Payload is opaque text and
// unique within its kind; the row is destroyed once drawn.
type Item struct {
	ID      int64
	Kind    ItemKind
	Payload string
}
