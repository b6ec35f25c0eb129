package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence specification as found in configuration, e.g.
// "<space>" or "<c-a>" or "x".
type Keyspec string

// specialKeys holds the identifiers usable in '<...>' special contexts.
var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

// specialIdentifiers is the inverse of specialKeys.
var specialIdentifiers = map[Key]string{}

// Some control keys share their code with named keys (e.g. <c-i> is <tab>);
// the named identifier wins when converting back.
func init() {
	for identifier, key := range specialKeys {
		specialIdentifiers[key] = identifier
	}
	add := func(identifier string, key Key) {
		specialKeys[identifier] = key
		if _, taken := specialIdentifiers[key]; !taken {
			specialIdentifiers[key] = identifier
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		add("c-"+string(r), Key{Key: tcell.KeyCtrlA + tcell.Key(r-'a')})
	}
	for i := 1; i <= 12; i++ {
		add(fmt.Sprintf("f%d", i), Key{Key: tcell.KeyF1 + tcell.Key(i-1)})
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range specR {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("unclosed special context in '%s'", spec)
	}

	result := make([]Key, 0, len(keys))
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(keyIdentifier), err)
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// ConfigKeyspecToKey converts a keyspec that must describe exactly one key.
func ConfigKeyspecToKey(spec Keyspec) (Key, error) {
	keys, err := ConfigKeyspecToKeys(spec)
	if err != nil {
		return Key{}, err
	}
	if len(keys) != 1 {
		return Key{}, fmt.Errorf("keyspec '%s' has not exactly one key (but %d)", spec, len(keys))
	}
	return keys[0], nil
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
func ToConfigIdentifierString(k Key) (string, error) {
	if identifier, ok := specialIdentifiers[k]; ok {
		return "<" + identifier + ">", nil
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch), nil
	}
	return "", fmt.Errorf("undescribable key %s", k.ToDebugString())
}
