package mediarss

import (
	"testing"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

func TestGroup_Load(t *testing.T) {
	fragment := `<media:group>` +
		`<media:content url="http://example.com/lo.mp3" bitrate="64"></media:content>` +
		`<media:content url="http://example.com/hi.mp3" bitrate="128" isDefault="true"></media:content>` +
		`<media:title>Song Title</media:title>` +
		`<media:category>music/rock</media:category>` +
		`</media:group>`

	p := startParser(t, fragment)
	g := NewGroup()
	loaded, err := g.Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded {
		t.Fatal("Load() = false, want true")
	}

	if len(g.Contents) != 2 {
		t.Fatalf("contents count = %d, want 2", len(g.Contents))
	}
	if g.Contents[0].URL != "http://example.com/lo.mp3" || g.Contents[1].URL != "http://example.com/hi.mp3" {
		t.Error("contents not in document order")
	}
	if !g.Contents[1].IsDefault {
		t.Error("second content should be the default")
	}
	if g.Title == nil || g.Title.Content != "Song Title" {
		t.Errorf("title = %+v, want Song Title", g.Title)
	}
	if len(g.Categories) != 1 || g.Categories[0].Content != "music/rock" {
		t.Errorf("categories = %+v, want one music/rock entry", g.Categories)
	}
}

func TestGroup_Load_EmptyGroup(t *testing.T) {
	p := startParser(t, `<media:group></media:group>`)
	g := NewGroup()
	loaded, err := g.Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded {
		t.Error("Load() = true for empty group, want false")
	}
}

func TestGroup_Load_SkipsUnknownChildren(t *testing.T) {
	fragment := `<media:group>` +
		`<media:peerLink href="http://example.com/t"></media:peerLink>` +
		`<media:title>Kept</media:title>` +
		`</media:group>`

	p := startParser(t, fragment)
	g := NewGroup()
	loaded, err := g.Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded {
		t.Fatal("Load() = false, want true")
	}
	if g.Title == nil || g.Title.Content != "Kept" {
		t.Errorf("title = %+v, want Kept", g.Title)
	}
}

// Document interleaving across element names is intentionally lost on
// round trip: contents serialize first, then the shared entities in
// fixed type order.
func TestGroup_RoundTrip_LosesInterleaving(t *testing.T) {
	interleaved := `<media:group>` +
		`<media:title>First In Document</media:title>` +
		`<media:content url="http://example.com/a.mp3"></media:content>` +
		`<media:category>music</media:category>` +
		`</media:group>`

	p := startParser(t, interleaved)
	g := NewGroup()
	if _, err := g.Load(p); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := `<media:group>` +
		`<media:content url="http://example.com/a.mp3"></media:content>` +
		`<media:category>music</media:category>` +
		`<media:title>First In Document</media:title>` +
		`</media:group>`
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}

	// The re-serialized form must still parse back to an equal group.
	p2 := startParser(t, g.String())
	g2 := NewGroup()
	if _, err := g2.Load(p2); err != nil {
		t.Fatalf("reparse error = %v", err)
	}
	if !g.Equals(g2) {
		t.Error("reparsed group differs from serialized group")
	}
}

func TestGroup_Compare(t *testing.T) {
	build := func() *Group {
		g := NewGroup()
		g.Contents = append(g.Contents, &Content{URL: "http://example.com/a", Bitrate: 64})
		g.Title = NewText("T")
		g.Keywords = append(g.Keywords, "k1", "k2")
		return g
	}

	a := build()
	b := build()
	if a.Compare(b) != 0 {
		t.Error("identically built groups must compare to 0")
	}
	if a.Compare(a) != 0 {
		t.Error("Compare(self) must be 0")
	}

	b.Contents = append(b.Contents, &Content{URL: "http://example.com/b"})
	if a.Compare(b) == 0 {
		t.Error("groups with different content counts must not compare equal")
	}
	if (a.Compare(b) == 0) != (b.Compare(a) == 0) {
		t.Error("Compare zero-ness must be symmetric")
	}
}

func TestGroup_CompareTo_TypeMismatch(t *testing.T) {
	g := NewGroup()

	_, err := g.CompareTo(NewExtension())
	if !errors.IsTypeMismatch(err) {
		t.Errorf("CompareTo(extension) error = %v, want TypeMismatchError", err)
	}
}

func TestGroup_WriteTo_NilEncoder(t *testing.T) {
	g := NewGroup()
	if err := g.WriteTo(nil); !errors.IsInvalidArgument(err) {
		t.Errorf("WriteTo(nil) error = %v, want InvalidArgumentError", err)
	}
}

func TestGroup_Load_SkipsStrayText(t *testing.T) {
	fragment := `<media:group>stray<media:title>Kept</media:title></media:group>`

	p := startParser(t, fragment)
	g := NewGroup()
	loaded, err := g.Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded {
		t.Fatal("Load() = false, want true")
	}
	if g.Title == nil || g.Title.Content != "Kept" {
		t.Errorf("title = %+v, want Kept", g.Title)
	}
}

func TestGroup_Load_StrayTextBetweenChildren(t *testing.T) {
	fragment := `<media:group>` +
		`<media:content url="http://example.com/a.mp3"></media:content>` +
		` noise ` +
		`<media:category>music</media:category>` +
		`</media:group>`

	p := startParser(t, fragment)
	g := NewGroup()
	loaded, err := g.Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded {
		t.Fatal("Load() = false, want true")
	}
	if len(g.Contents) != 1 {
		t.Errorf("contents = %+v, want one entry", g.Contents)
	}
	if len(g.Categories) != 1 || g.Categories[0].Content != "music" {
		t.Errorf("categories = %+v", g.Categories)
	}
}
