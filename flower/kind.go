package flower

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven flower illustrations.
type Kind int

const (
	Peony Kind = iota
	Tulip
	Daisy
	Rose
	Lavender
	Sunflower
	Lotus
)

// DefaultKind is what Generate draws for a kind outside the enumeration.
const DefaultKind = Lotus

var kindNames = [...]string{
	Peony:     "peony",
	Tulip:     "tulip",
	Daisy:     "daisy",
	Rose:      "rose",
	Lavender:  "lavender",
	Sunflower: "sunflower",
	Lotus:     "lotus",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is part of the enumeration.
func (k Kind) Valid() bool {
	return k >= Peony && k <= Lotus
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a lowercase name back to its Kind. Unknown names resolve to
// DefaultKind with ok set to false.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return DefaultKind, false
}

// MarshalText lets kinds appear by name in YAML and JSON.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("flower: invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("flower: unknown kind %q", string(b))
	}
	*k = parsed
	return nil
}
