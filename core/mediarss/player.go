// ABOUTME: Player value type pointing at an embedded media player page
// ABOUTME: Maps the media:player element with url, height and width attributes

package mediarss

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
	"github.com/BumpyClock/go-mediarss/pkg/utils/parse"
)

// Player points at a page that plays a media object inline.
type Player struct {
	// URL is the address of the player page. Required.
	URL string `json:"url,omitempty"`

	// Height of the player window in pixels. Zero means unset.
	Height int `json:"height,omitempty"`

	// Width of the player window in pixels. Zero means unset.
	Width int `json:"width,omitempty"`
}

// NewPlayer creates a player for the given page URL. The URL is trimmed,
// must not be empty and must parse as a URL.
func NewPlayer(rawURL string) (*Player, error) {
	pl := &Player{}
	if err := pl.SetURL(rawURL); err != nil {
		return nil, err
	}
	return pl, nil
}

// SetURL assigns the player page URL, rejecting empty or unparseable
// values at the point of assignment.
func (pl *Player) SetURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return &errors.InvalidArgumentError{Arg: "url", Message: "player url must not be empty"}
	}
	if _, err := url.Parse(rawURL); err != nil {
		return &errors.InvalidArgumentError{Arg: "url", Message: "player url must be a valid URL"}
	}
	pl.URL = rawURL
	return nil
}

// Load reads the player from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated. Unparseable height or width values are
// treated as absent.
func (pl *Player) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if u := attrValue(p, "url"); u != "" {
		pl.URL = u
		loaded = true
	}
	if h := parse.IntOrZero(attrValue(p, "height")); h > 0 {
		pl.Height = h
		loaded = true
	}
	if w := parse.IntOrZero(attrValue(p, "width")); w > 0 {
		pl.Width = w
		loaded = true
	}

	// The element carries no text content; consume through the end tag.
	if _, err := elementText(p); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// WriteTo emits the media:player element. The url attribute is always
// written, even when empty, then height and width; the dimensions are
// omitted when unset.
func (pl *Player) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	attrs := []xml.Attr{{Name: xml.Name{Local: "url"}, Value: pl.URL}}
	attrs = appendIntAttr(attrs, "height", pl.Height)
	attrs = appendIntAttr(attrs, "width", pl.Width)
	return writeElement(e, "player", attrs, "")
}

// Compare orders two players field by field, combining the component
// results with bitwise OR. A nil player compares as less.
func (pl *Player) Compare(other *Player) int {
	if pl == other {
		return 0
	}
	if pl == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(pl.URL, other.URL)
	result |= compareInts(pl.Height, other.Height)
	result |= compareInts(pl.Width, other.Width)
	return result
}

// CompareTo orders the player against an arbitrary value, failing with
// a TypeMismatchError when the value is not a *Player.
func (pl *Player) CompareTo(v any) (int, error) {
	other, ok := v.(*Player)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Player", Actual: fmt.Sprintf("%T", v)}
	}
	return pl.Compare(other), nil
}

// Equals reports whether v is a *Player with identical fields.
func (pl *Player) Equals(v any) bool {
	other, ok := v.(*Player)
	return ok && pl.Compare(other) == 0
}

// String returns the XML form of the player.
func (pl *Player) String() string {
	return stringify(pl)
}
