// ABOUTME: CommonEntities capability shared by the Group and Extension containers
// ABOUTME: Aggregation utility that fills, writes and compares the shared optional fields

package mediarss

import (
	"encoding/xml"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// CommonEntities is the set of optional sub-elements every Media RSS
// container may carry. Collections preserve document order within each
// element name and are append-only from the caller's perspective;
// singular slots hold the last occurrence seen.
type CommonEntities struct {
	// Categories the media object belongs to.
	Categories []*Category `json:"categories,omitempty"`

	// Copyright statement for the media object.
	Copyright *Copyright `json:"copyright,omitempty"`

	// Credits for the people and organizations involved.
	Credits []*Credit `json:"credits,omitempty"`

	// Description is a short synopsis of the media object.
	Description *Text `json:"description,omitempty"`

	// Hashes of the media object's binary content.
	Hashes []*Hash `json:"hashes,omitempty"`

	// Keywords relevant to the media object.
	Keywords []string `json:"keywords,omitempty"`

	// Player that can render the media object inline.
	Player *Player `json:"player,omitempty"`

	// Ratings declaring the permissible audience.
	Ratings []*Rating `json:"ratings,omitempty"`

	// Restrictions on where the media object may be aired.
	Restrictions []*Restriction `json:"restrictions,omitempty"`

	// TextSeries is the transcript of the media object as timed pieces.
	TextSeries []*Text `json:"text,omitempty"`

	// Thumbnails representative of the media object.
	Thumbnails []*Thumbnail `json:"thumbnails,omitempty"`

	// Title of the media object.
	Title *Text `json:"title,omitempty"`
}

// Holder is the capability contract implemented by the two container
// entities (Group and Extension): anything that aggregates the shared
// optional sub-elements.
type Holder interface {
	MediaEntities() *CommonEntities
}

// MediaEntities returns the shared entity set itself, letting any type
// that embeds CommonEntities satisfy Holder.
func (c *CommonEntities) MediaEntities() *CommonEntities { return c }

// newCommonEntities returns an entity set with every collection eagerly
// allocated empty, so callers never see a nil slice.
func newCommonEntities() CommonEntities {
	return CommonEntities{
		Categories:   make([]*Category, 0),
		Credits:      make([]*Credit, 0),
		Hashes:       make([]*Hash, 0),
		Keywords:     make([]string, 0),
		Ratings:      make([]*Rating, 0),
		Restrictions: make([]*Restriction, 0),
		TextSeries:   make([]*Text, 0),
		Thumbnails:   make([]*Thumbnail, 0),
	}
}

// FillCommonEntities reads every known child element of the container
// the parser is positioned on into the holder, leaving the parser on
// the container's end tag. Unknown children and stray character data
// are skipped. It returns true iff any child contributed.
func FillCommonEntities(h Holder, p *xpp.XMLPullParser) (bool, error) {
	if h == nil {
		return false, &errors.InvalidArgumentError{Arg: "h", Message: "holder must not be nil"}
	}
	if err := requireStart(p); err != nil {
		return false, err
	}
	return fillCommonEntities(h.MediaEntities(), p)
}

// fillCommonEntities iterates the children of the current container
// element, dispatching each to fillCommonEntity. Stray character data
// between children is skipped, not an error.
func fillCommonEntities(c *CommonEntities, p *xpp.XMLPullParser) (bool, error) {
	loaded := false
	for {
		tok, err := p.Next()
		if err != nil {
			return loaded, err
		}
		switch tok {
		case xpp.EndTag, xpp.EndDocument:
			return loaded, nil
		case xpp.StartTag:
			ok, err := fillCommonEntity(c, p)
			if err != nil {
				return loaded, err
			}
			loaded = loaded || ok
		case xpp.Text:
			if text := strings.TrimSpace(p.Text); text != "" {
				logger.Debug("Skipping stray text inside media container", map[string]interface{}{
					"text": text,
				})
			}
		}
	}
}

// fillCommonEntity dispatches a single positioned child element to the
// matching value type's Load, appending to (or setting, for singular
// slots) the corresponding field when the load contributed. The parser
// is left on the child's end tag. Elements outside the known set are
// consumed and ignored.
func fillCommonEntity(c *CommonEntities, p *xpp.XMLPullParser) (bool, error) {
	name := strings.ToLower(p.Name)
	switch name {
	case "category":
		cat := &Category{}
		ok, err := cat.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Categories = append(c.Categories, cat)
		}
		return ok, nil
	case "copyright":
		cr := &Copyright{}
		ok, err := cr.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Copyright = cr
		}
		return ok, nil
	case "credit":
		credit := &Credit{}
		ok, err := credit.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Credits = append(c.Credits, credit)
		}
		return ok, nil
	case "description":
		desc := &Text{}
		ok, err := desc.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Description = desc
		}
		return ok, nil
	case "hash":
		hash := &Hash{}
		ok, err := hash.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Hashes = append(c.Hashes, hash)
		}
		return ok, nil
	case "keywords":
		text, err := elementText(p)
		if err != nil {
			return false, err
		}
		keywords := splitKeywords(text)
		if len(keywords) == 0 {
			return false, nil
		}
		c.Keywords = append(c.Keywords, keywords...)
		return true, nil
	case "player":
		player := &Player{}
		ok, err := player.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Player = player
		}
		return ok, nil
	case "rating":
		rating := &Rating{}
		ok, err := rating.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Ratings = append(c.Ratings, rating)
		}
		return ok, nil
	case "restriction":
		restriction := NewRestriction()
		ok, err := restriction.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Restrictions = append(c.Restrictions, restriction)
		}
		return ok, nil
	case "text":
		text := &Text{}
		ok, err := text.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.TextSeries = append(c.TextSeries, text)
		}
		return ok, nil
	case "thumbnail":
		thumb := &Thumbnail{}
		ok, err := thumb.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Thumbnails = append(c.Thumbnails, thumb)
		}
		return ok, nil
	case "title":
		title := &Text{}
		ok, err := title.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			c.Title = title
		}
		return ok, nil
	default:
		logger.Debug("Skipping unknown media child element", map[string]interface{}{
			"element": name,
		})
		if _, err := elementText(p); err != nil {
			return false, err
		}
		return false, nil
	}
}

// WriteCommonEntities emits every populated shared field of the holder
// in fixed type order: categories, copyright, credits, description,
// hashes, keywords, player, ratings, restrictions, text series,
// thumbnails, title. Original document interleaving across element
// names is not preserved; each collection keeps its own insertion order.
func WriteCommonEntities(h Holder, e *xml.Encoder) error {
	if h == nil {
		return &errors.InvalidArgumentError{Arg: "h", Message: "holder must not be nil"}
	}
	if err := requireEncoder(e); err != nil {
		return err
	}
	return writeCommonEntities(h.MediaEntities(), e)
}

func writeCommonEntities(c *CommonEntities, e *xml.Encoder) error {
	for _, cat := range c.Categories {
		if err := cat.WriteTo(e); err != nil {
			return err
		}
	}
	if c.Copyright != nil {
		if err := c.Copyright.WriteTo(e); err != nil {
			return err
		}
	}
	for _, credit := range c.Credits {
		if err := credit.WriteTo(e); err != nil {
			return err
		}
	}
	if c.Description != nil {
		if err := c.Description.writeElement(e, "description"); err != nil {
			return err
		}
	}
	for _, hash := range c.Hashes {
		if err := hash.WriteTo(e); err != nil {
			return err
		}
	}
	if len(c.Keywords) > 0 {
		if err := writeElement(e, "keywords", nil, strings.Join(c.Keywords, ", ")); err != nil {
			return err
		}
	}
	if c.Player != nil {
		if err := c.Player.WriteTo(e); err != nil {
			return err
		}
	}
	for _, rating := range c.Ratings {
		if err := rating.WriteTo(e); err != nil {
			return err
		}
	}
	for _, restriction := range c.Restrictions {
		if err := restriction.WriteTo(e); err != nil {
			return err
		}
	}
	for _, text := range c.TextSeries {
		if err := text.WriteTo(e); err != nil {
			return err
		}
	}
	for _, thumb := range c.Thumbnails {
		if err := thumb.WriteTo(e); err != nil {
			return err
		}
	}
	if c.Title != nil {
		if err := c.Title.writeElement(e, "title"); err != nil {
			return err
		}
	}
	return nil
}

// CompareCommonEntities orders the shared fields of two holders,
// combining the twelve component results with bitwise OR: zero iff
// every component compared equal. A nil holder compares as less.
func CompareCommonEntities(a, b Holder) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return compareCommonEntities(a.MediaEntities(), b.MediaEntities())
}

func compareCommonEntities(a, b *CommonEntities) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	result := compareSequence(a.Categories, b.Categories, (*Category).Compare)
	result |= a.Copyright.Compare(b.Copyright)
	result |= compareSequence(a.Credits, b.Credits, (*Credit).Compare)
	result |= a.Description.Compare(b.Description)
	result |= compareSequence(a.Hashes, b.Hashes, (*Hash).Compare)
	result |= compareStringSlices(a.Keywords, b.Keywords)
	result |= a.Player.Compare(b.Player)
	result |= compareSequence(a.Ratings, b.Ratings, (*Rating).Compare)
	result |= compareSequence(a.Restrictions, b.Restrictions, (*Restriction).Compare)
	result |= compareSequence(a.TextSeries, b.TextSeries, (*Text).Compare)
	result |= compareSequence(a.Thumbnails, b.Thumbnails, (*Thumbnail).Compare)
	result |= a.Title.Compare(b.Title)
	return result
}
