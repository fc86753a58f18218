package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeys maps the identifiers usable in special contexts (e.g. "<cr>")
// to keys.
var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"tab":   {Key: tcell.KeyTab},
	"s-tab": {Key: tcell.KeyBacktab},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"home":  {Key: tcell.KeyHome},
	"end":   {Key: tcell.KeyEnd},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

// specialIdentifiers is the inverse of specialKeys.
var specialIdentifiers = map[Key]string{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		specialKeys[fmt.Sprintf("c-%c", c)] = Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}
	}
	for identifier, key := range specialKeys {
		specialIdentifiers[key] = identifier
	}
	// <c-i>, <c-m>, and <c-h> are indistinguishable from <tab>, <cr>, and
	// <c-bs>
	specialIdentifiers[Key{Key: tcell.KeyTab}] = "tab"
	specialIdentifiers[Key{Key: tcell.KeyEnter}] = "cr"
	specialIdentifiers[Key{Key: tcell.KeyBackspace}] = "c-bs"
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)

	runes := []rune(spec)
	for pos := 0; pos < len(runes); pos++ {
		switch runes[pos] {

		case '<':
			end := pos + 1
			for end < len(runes) && runes[end] != '>' {
				if runes[end] == '<' {
					return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", end)
				}
				if !unicode.IsLetter(runes[end]) && runes[end] != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", runes[end], end)
				}
				end++
			}
			if end == len(runes) {
				return nil, fmt.Errorf("special context opened at pos %d is never closed", pos)
			}
			key, err := KeyIdentifierToKey(string(runes[pos+1 : end]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(runes[pos:end+1]), err)
			}
			result = append(result, key)
			pos = end

		case '>':
			return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: runes[pos]})

		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identfier.
func ToConfigIdentifierString(k Key) string {
	identifier, ok := specialIdentifiers[k]
	switch {
	case ok:
		return "<" + identifier + ">"
	case k.Key == tcell.KeyRune:
		return string(k.Ch)
	default:
		panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
	}
}
