package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/session"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return filepath.Join(dir, "session.toml")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return out.String(), err
}

func loadSession(t *testing.T, path string) *session.Session {
	t.Helper()
	s, err := session.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestPeek_NewDeck(t *testing.T) {
	path := setup(t)

	out, err := run(t, "--session", path, "peek")
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if !strings.Contains(out, "0 - The Fool") {
		t.Errorf("expected The Fool on top, got %q", out)
	}
}

func TestDraw_ReturnsCardsToBottom(t *testing.T) {
	path := setup(t)

	out, err := run(t, "--session", path, "draw", "2")
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !strings.Contains(out, "1. ★ 0 - The Fool") || !strings.Contains(out, "2. ★ I - The Magician") {
		t.Errorf("unexpected draw output:\n%s", out)
	}

	cards := loadSession(t, path).Deck.Cards()
	if len(cards) != deck.Size {
		t.Fatalf("deck has %d cards after draw", len(cards))
	}
	if got := cards[0].String(); got != "II - The High Priestess" {
		t.Errorf("top card = %q", got)
	}
	if got := cards[77].String(); got != "I - The Magician" {
		t.Errorf("bottom card = %q", got)
	}
}

func TestDraw_TooMany(t *testing.T) {
	path := setup(t)

	if _, err := run(t, "--session", path, "draw", "79"); err == nil {
		t.Error("expected an error drawing 79 cards")
	}
	if _, err := run(t, "--session", path, "draw", "0"); err == nil {
		t.Error("expected an error drawing 0 cards")
	}
}

func TestShuffle_Seeded(t *testing.T) {
	a, b := setup(t), filepath.Join(t.TempDir(), "b.toml")

	for _, path := range []string{a, b} {
		out, err := run(t, "--session", path, "--seed", "17", "shuffle", "riffle", "--times", "3")
		if err != nil {
			t.Fatalf("shuffle: %v", err)
		}
		if !strings.Contains(out, "Shuffled the deck 3 times (riffle)") {
			t.Errorf("unexpected output %q", out)
		}
	}

	ac, bc := loadSession(t, a).Deck.Cards(), loadSession(t, b).Deck.Cards()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("seeded shuffles diverged at position %d", i)
		}
	}
}

func TestShuffle_DefaultKind(t *testing.T) {
	path := setup(t)

	if _, err := run(t, "config", "set-shuffle", "overhand"); err != nil {
		t.Fatalf("set-shuffle: %v", err)
	}

	out, err := run(t, "--session", path, "shuffle")
	if err != nil {
		t.Fatalf("shuffle: %v", err)
	}
	if !strings.Contains(out, "(overhand)") {
		t.Errorf("expected the configured overhand shuffle, got %q", out)
	}

	for _, c := range loadSession(t, path).Deck.Cards() {
		if c.Reversed() {
			t.Fatalf("overhand should not reverse %s", c)
		}
	}
}

func TestShuffle_UnknownKind(t *testing.T) {
	path := setup(t)

	if _, err := run(t, "--session", path, "shuffle", "hindu"); err == nil {
		t.Error("expected an error for an unknown shuffle")
	}
}

func TestResetAndValidate(t *testing.T) {
	path := setup(t)

	if _, err := run(t, "--session", path, "shuffle", "random"); err != nil {
		t.Fatalf("shuffle: %v", err)
	}

	out, err := run(t, "--session", path, "validate")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "holds a complete deck") {
		t.Errorf("unexpected validate output:\n%s", out)
	}

	if _, err := run(t, "--session", path, "reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	want := deck.New().Cards()
	got := loadSession(t, path).Deck.Cards()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after reset, position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestShowAndList(t *testing.T) {
	path := setup(t)

	out, err := run(t, "--session", path, "show", "78")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"King of Pentacles", "Minor Arcana", "Pentacles · ♦", "Upright"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "--session", path, "show", "79"); err == nil {
		t.Error("expected an error for a position past the bottom")
	}

	out, err = run(t, "--session", path, "list", "--limit", "3")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "3. ★ II - The High Priestess") || strings.Contains(out, "III - The Empress") {
		t.Errorf("unexpected list output:\n%s", out)
	}
}

func TestPrintColumns(t *testing.T) {
	var buf bytes.Buffer
	printColumns(&buf, []string{"a", "bb", "c", "dd", "e"}, 8)

	want := "a   dd\nbb  e\nc\n"
	if buf.String() != want {
		t.Errorf("printColumns = %q, want %q", buf.String(), want)
	}
}

func TestStripAnsi(t *testing.T) {
	if got := stripAnsi("\x1b[38;2;1;2;3m██\x1b[0m x"); got != "██ x" {
		t.Errorf("stripAnsi = %q", got)
	}
}

func TestIncompleteSessionIsRefused(t *testing.T) {
	path := setup(t)

	fools := &session.Session{Deck: deck.FromCards([]card.Card{
		card.New(card.Major{Order: 0, Name: "The Fool"}),
		card.New(card.Major{Order: 0, Name: "The Fool"}),
	})}
	if err := fools.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	twoCards, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	emptyPath := filepath.Join(filepath.Dir(path), "empty.toml")
	if err := os.WriteFile(emptyPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		data []byte
		args []string
	}{
		{"two cards", path, twoCards, []string{"--seed", "1", "shuffle", "riffle"}},
		{"empty file", emptyPath, nil, []string{"shuffle", "random"}},
		{"peek", emptyPath, nil, []string{"peek"}},
		{"draw", path, twoCards, []string{"draw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--session", tt.path}, tt.args...)...)
			if !errors.Is(err, session.ErrInvalidDeck) {
				t.Fatalf("expected ErrInvalidDeck, got %v", err)
			}
			if !strings.Contains(err.Error(), "deckhand reset") {
				t.Errorf("error should point at reset: %v", err)
			}

			data, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(data, tt.data) {
				t.Error("a refused session file must be left untouched")
			}
		})
	}

	// reset does not read the damaged session, so it recovers from it
	if _, err := run(t, "--session", path, "reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := loadSession(t, path).Deck.Len(); got != deck.Size {
		t.Errorf("after reset the deck has %d cards", got)
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	if got := terminalWidth(&bytes.Buffer{}); got != 80 {
		t.Errorf("terminalWidth(buffer) = %d, want 80", got)
	}
}
