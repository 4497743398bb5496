package catalog

import (
	"fmt"
	"strings"
)

// Interest is one of the fixed interest categories a traveler can pick.
type Interest int

const (
	Heritage Interest = iota
	Food
	Adventure
	Culture
	Nature
	Shopping
	Nightlife
	Photography
)

// DefaultInterest is used whenever a tag cannot be resolved.
const DefaultInterest = Heritage

type interestInfo struct {
	tag   string
	label string
	icon  string
}

var interestTable = [...]interestInfo{
	Heritage:    {tag: "heritage", label: "Heritage & History", icon: "🏛️"},
	Food:        {tag: "food", label: "Food & Cuisine", icon: "🍽️"},
	Adventure:   {tag: "adventure", label: "Adventure & Sports", icon: "🏔️"},
	Culture:     {tag: "culture", label: "Arts & Culture", icon: "🎨"},
	Nature:      {tag: "nature", label: "Nature & Parks", icon: "🌳"},
	Shopping:    {tag: "shopping", label: "Shopping", icon: "🛍️"},
	Nightlife:   {tag: "nightlife", label: "Nightlife", icon: "🌃"},
	Photography: {tag: "photography", label: "Photography", icon: "📸"},
}

// All returns every interest in display order.
func All() []Interest {
	out := make([]Interest, len(interestTable))
	for i := range interestTable {
		out[i] = Interest(i)
	}
	return out
}

func (i Interest) valid() bool { return i >= 0 && int(i) < len(interestTable) }

func (i Interest) String() string {
	if !i.valid() {
		return fmt.Sprintf("interest(%d)", int(i))
	}
	return interestTable[i].tag
}

func (i Interest) Label() string {
	if !i.valid() {
		return ""
	}
	return interestTable[i].label
}

func (i Interest) Icon() string {
	if !i.valid() {
		return ""
	}
	return interestTable[i].icon
}

// ParseInterest matches a tag case-insensitively.
func ParseInterest(tag string) (Interest, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, info := range interestTable {
		if info.tag == tag {
			return Interest(i), true
		}
	}
	return DefaultInterest, false
}

// ResolveInterest never fails: unknown tags become DefaultInterest.
func ResolveInterest(tag string) Interest {
	i, _ := ParseInterest(tag)
	return i
}

// ResolveInterests resolves tags in order and drops repeats. An empty
// input resolves to the default interest alone.
func ResolveInterests(tags []string) []Interest {
	seen := make(map[Interest]bool, len(tags))
	out := make([]Interest, 0, len(tags))
	for _, tag := range tags {
		i := ResolveInterest(tag)
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	if len(out) == 0 {
		out = append(out, DefaultInterest)
	}
	return out
}

func (i Interest) MarshalText() ([]byte, error) {
	if !i.valid() {
		return nil, fmt.Errorf("catalog: invalid interest %d", int(i))
	}
	return []byte(i.String()), nil
}

func (i *Interest) UnmarshalText(text []byte) error {
	parsed, ok := ParseInterest(string(text))
	if !ok {
		return fmt.Errorf("catalog: unknown interest %q", string(text))
	}
	*i = parsed
	return nil
}
