// ABOUTME: Mappers for converting gofeed's generic extension trees into typed Media RSS values
// ABOUTME: Bridges feeds parsed with gofeed to the mediarss model without re-parsing XML

package mappers

import (
	"strconv"
	"strings"

	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/BumpyClock/go-mediarss/core/mediarss"
	"github.com/BumpyClock/go-mediarss/pkg/utils/parse"
)

// ToExtension converts the media-namespace element map of a gofeed item
// or feed (item.Extensions["media"]) into a typed Extension holder.
// Document interleaving across element names is not preserved; each
// element name keeps its own order, matching the mediarss write order.
func ToExtension(nodes map[string][]ext.Extension) *mediarss.Extension {
	if nodes == nil {
		return nil
	}

	x := mediarss.NewExtension()
	for _, node := range nodes["content"] {
		if content := ToContent(node); content != nil {
			x.Contents = append(x.Contents, content)
		}
	}
	for _, node := range nodes["group"] {
		if group := ToGroup(node); group != nil {
			x.Groups = append(x.Groups, group)
		}
	}
	fillCommonEntities(x.MediaEntities(), nodes)
	return x
}

// ToGroup converts a media:group extension node, including its nested
// content elements and common entities.
func ToGroup(node ext.Extension) *mediarss.Group {
	group := mediarss.NewGroup()
	for _, child := range node.Children["content"] {
		if content := ToContent(child); content != nil {
			group.Contents = append(group.Contents, content)
		}
	}
	fillCommonEntities(group.MediaEntities(), node.Children)
	return group
}

// ToContent converts a media:content extension node, or nil when the
// node carries no recognized attributes.
func ToContent(node ext.Extension) *mediarss.Content {
	content := mediarss.NewContent()
	content.URL = node.Attrs["url"]
	content.FileSize = parse.Int64OrZero(node.Attrs["fileSize"])
	content.Type = node.Attrs["type"]
	content.Medium = mediarss.MediumFromToken(node.Attrs["medium"])
	if def, err := strconv.ParseBool(node.Attrs["isDefault"]); err == nil {
		content.IsDefault = def
	}
	content.Expression = mediarss.ExpressionFromToken(node.Attrs["expression"])
	content.Bitrate = parse.IntOrZero(node.Attrs["bitrate"])
	content.Framerate = parse.IntOrZero(node.Attrs["framerate"])
	content.SamplingRate = parse.FloatOrZero(node.Attrs["samplingrate"])
	content.Channels = parse.IntOrZero(node.Attrs["channels"])
	content.Duration = parse.IntOrZero(node.Attrs["duration"])
	content.Height = parse.IntOrZero(node.Attrs["height"])
	content.Width = parse.IntOrZero(node.Attrs["width"])
	content.Lang = node.Attrs["lang"]

	if content.Equals(mediarss.NewContent()) {
		return nil
	}
	return content
}

// fillCommonEntities maps the shared optional elements out of a
// name-keyed node map into an entity set.
func fillCommonEntities(c *mediarss.CommonEntities, nodes map[string][]ext.Extension) {
	for _, node := range nodes["category"] {
		c.Categories = append(c.Categories, &mediarss.Category{
			Content: strings.TrimSpace(node.Value),
			Scheme:  node.Attrs["scheme"],
			Label:   node.Attrs["label"],
		})
	}
	if node, ok := last(nodes["copyright"]); ok {
		c.Copyright = &mediarss.Copyright{
			Text: strings.TrimSpace(node.Value),
			URL:  node.Attrs["url"],
		}
	}
	for _, node := range nodes["credit"] {
		c.Credits = append(c.Credits, &mediarss.Credit{
			Entity: strings.TrimSpace(node.Value),
			Role:   node.Attrs["role"],
			Scheme: node.Attrs["scheme"],
		})
	}
	if node, ok := last(nodes["description"]); ok {
		c.Description = toText(node)
	}
	for _, node := range nodes["hash"] {
		c.Hashes = append(c.Hashes, &mediarss.Hash{
			Value:     strings.TrimSpace(node.Value),
			Algorithm: mediarss.HashAlgorithmFromToken(node.Attrs["algo"]),
		})
	}
	for _, node := range nodes["keywords"] {
		for _, kw := range strings.Split(node.Value, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				c.Keywords = append(c.Keywords, kw)
			}
		}
	}
	if node, ok := last(nodes["player"]); ok {
		c.Player = &mediarss.Player{
			URL:    node.Attrs["url"],
			Height: parse.IntOrZero(node.Attrs["height"]),
			Width:  parse.IntOrZero(node.Attrs["width"]),
		}
	}
	for _, node := range nodes["rating"] {
		c.Ratings = append(c.Ratings, &mediarss.Rating{
			Content: strings.TrimSpace(node.Value),
			Scheme:  node.Attrs["scheme"],
		})
	}
	for _, node := range nodes["restriction"] {
		restriction := mediarss.NewRestriction()
		restriction.Relationship = mediarss.RelationshipFromToken(node.Attrs["relationship"])
		restriction.Type = mediarss.RestrictionTypeFromToken(node.Attrs["type"])
		restriction.Entities = append(restriction.Entities, strings.Fields(node.Value)...)
		c.Restrictions = append(c.Restrictions, restriction)
	}
	for _, node := range nodes["text"] {
		c.TextSeries = append(c.TextSeries, toText(node))
	}
	for _, node := range nodes["thumbnail"] {
		c.Thumbnails = append(c.Thumbnails, &mediarss.Thumbnail{
			URL:    node.Attrs["url"],
			Height: parse.IntOrZero(node.Attrs["height"]),
			Width:  parse.IntOrZero(node.Attrs["width"]),
			Time:   node.Attrs["time"],
		})
	}
	if node, ok := last(nodes["title"]); ok {
		c.Title = toText(node)
	}
}

// toText converts a text-construct node (title, description or text).
func toText(node ext.Extension) *mediarss.Text {
	return &mediarss.Text{
		Content: strings.TrimSpace(node.Value),
		Type:    node.Attrs["type"],
		Lang:    node.Attrs["lang"],
		Start:   node.Attrs["start"],
		End:     node.Attrs["end"],
	}
}

// last returns the final occurrence of a repeated node, matching the
// last-wins behavior of the singular slots.
func last(nodes []ext.Extension) (ext.Extension, bool) {
	if len(nodes) == 0 {
		return ext.Extension{}, false
	}
	return nodes[len(nodes)-1], true
}
