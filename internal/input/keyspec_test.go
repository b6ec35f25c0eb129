package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inputlayers/internal/input"
)

func TestConfigKeyspecToKey(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		expectValid := func(s input.Keyspec) []input.Key {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err != nil {
				t.Error("unexpected error on valid spec:", err.Error())
			}
			if keys == nil {
				t.Error("unexpected nil keyspec on valid spec")
			}
			return keys
		}

		t.Run("empty", func(t *testing.T) {
			keys := expectValid("")
			if len(keys) != 0 {
				t.Error("expected empty seq of keys")
			}
		})

		t.Run("single", func(t *testing.T) {
			keys := expectValid("x")
			if len(keys) != 1 {
				t.Error("expected single key")
			}
			if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
				t.Error("expected single key to be 'x'")
			}
		})

		t.Run("special", func(t *testing.T) {
			t.Run("<c-a>", func(t *testing.T) {
				keys := expectValid("<c-a>")
				if len(keys) != 1 {
					t.Error("expected single key")
				}
				if (keys[0] != input.Key{Key: tcell.KeyCtrlA}) {
					t.Error("expected single key to be <c-a>")
				}
			})
			t.Run("<space>", func(t *testing.T) {
				keys := expectValid("<space>")
				if len(keys) != 1 {
					t.Error("expected single key")
				}
				if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: ' '}) {
					t.Error("expected single key to be <space>")
				}
			})
		})

		t.Run("sequence", func(t *testing.T) {
			t.Run("characters", func(t *testing.T) {
				keys := expectValid("xyz")
				if len(keys) != 3 {
					t.Error("expected three keys")
				}
				if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) && (keys[1] != input.Key{Key: tcell.KeyRune, Ch: 'y'}) && (keys[2] != input.Key{Key: tcell.KeyRune, Ch: 'z'}) {
					t.Error("expected sequence [x,y,z], not", keys)
				}
			})
			t.Run("with special", func(t *testing.T) {
				keys := expectValid("x<c-w>z")
				if len(keys) != 3 {
					t.Error("expected three keys")
				}
				if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) && (keys[1] != input.Key{Key: tcell.KeyCtrlW}) && (keys[2] != input.Key{Key: tcell.KeyRune, Ch: 'z'}) {
					t.Error("expected sequence [x,<c-w>,z], not", keys)
				}
			})
		})
	})

	t.Run("invalid", func(t *testing.T) {
		expectInvalid := func(s input.Keyspec) error {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err == nil {
				t.Error("unexpectedly no err on invalid spec")
			}
			if keys != nil {
				t.Error("unexpected key seq on invalid spec:", keys)
			}
			return err
		}

		t.Run("unopened special", func(t *testing.T) {
			expectInvalid("c-w>")
		})
		t.Run("unclosed special (EOL)", func(t *testing.T) {
			expectInvalid("<c-w")
		})
		t.Run("unclosed special (double open)", func(t *testing.T) {
			expectInvalid("<c-w<c-a>")
		})
		t.Run("wrong delimiter in special", func(t *testing.T) {
			expectInvalid("<c+a>")
		})
	})

}

func TestConfigKeyspecToSingleKey(t *testing.T) {
	key, err := input.ConfigKeyspecToKey("<F5>")
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	if (key != input.Key{Key: tcell.KeyF5}) {
		t.Error("expected <f5>, got", key.ToDebugString())
	}

	_, err = input.ConfigKeyspecToKey("xy")
	if err == nil {
		t.Error("expected error for two-key spec")
	}
	_, err = input.ConfigKeyspecToKey("")
	if err == nil {
		t.Error("expected error for empty spec")
	}
}

func TestToConfigIdentifierString(t *testing.T) {
	expect := func(k input.Key, expected string) {
		t.Helper()
		actual, err := input.ToConfigIdentifierString(k)
		if err != nil {
			t.Errorf("unexpected error for %s: %s", k.ToDebugString(), err.Error())
		}
		if actual != expected {
			t.Errorf("expected '%s', got '%s'", expected, actual)
		}
	}

	expect(input.Key{Key: tcell.KeyRune, Ch: 'x'}, "x")
	expect(input.Key{Key: tcell.KeyRune, Ch: ' '}, "<space>")
	expect(input.Key{Key: tcell.KeyCtrlW}, "<c-w>")
	expect(input.Key{Key: tcell.KeyESC}, "<esc>")

	t.Run("named key wins over control alias", func(t *testing.T) {
		expect(input.Key{Key: tcell.KeyTab}, "<tab>")
		expect(input.Key{Key: tcell.KeyEnter}, "<cr>")
	})

	t.Run("undescribable", func(t *testing.T) {
		_, err := input.ToConfigIdentifierString(input.Key{Key: tcell.KeyPrint})
		if err == nil {
			t.Error("expected error for undescribable key")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, spec := range []input.Keyspec{"a", "<space>", "<c-a>", "<left>", "<f12>"} {
			key, err := input.ConfigKeyspecToKey(spec)
			if err != nil {
				t.Fatal(err.Error())
			}
			back, err := input.ToConfigIdentifierString(key)
			if err != nil {
				t.Fatal(err.Error())
			}
			if back != string(spec) {
				t.Errorf("'%s' came back as '%s'", spec, back)
			}
		}
	})
}
