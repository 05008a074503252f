package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"ayurcare_backend/internal/logger"
	"ayurcare_backend/internal/models"
)

// ParseGuidelines extracts ingredient records from the food guideline
// document. The markup repeats a "category section -> dosha column ->
// Favor/Avoid list" structure:
//
//	div.row
//	  h2.center            category heading
//	  div.table-content
//	    div.column.large-4  one per dosha
//	      h3                dosha name
//	      ... h4 "Avoid" / h4 "Favor" heading their parent list blocks
//
// One record is emitted per canonical ingredient name. The first section an
// ingredient appears in fixes its category; repeated (name, dosha) entries
// are preserved, since the source legitimately lists an ingredient twice
// under one dosha.
func ParseGuidelines(r io.Reader) ([]models.Ingredient, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	acc := newAccumulator()

	for _, section := range findAll(doc, elementWithClass("div", "row")) {
		heading := findFirst(section, elementWithClass("h2", "center"))
		if heading == nil {
			continue
		}
		category := strings.TrimSpace(nodeText(heading))

		content := findFirst(section, elementWithClass("div", "table-content"))
		if content == nil {
			continue
		}

		for _, column := range childElements(content, "div", "column", "large-4") {
			h3 := findFirst(column, element("h3"))
			if h3 == nil {
				continue
			}
			dosha := strings.TrimSpace(nodeText(h3))

			for _, status := range []string{models.StatusAvoid, models.StatusFavor} {
				list := findListBlock(column, status)
				if list == nil {
					continue
				}
				for _, item := range listItems(list) {
					acc.add(category, dosha, status, item)
				}
			}
		}
	}

	return acc.records(), nil
}

// --- accumulation ---

type accumulator struct {
	order  []string
	byName map[string]*models.Ingredient
}

func newAccumulator() *accumulator {
	return &accumulator{byName: make(map[string]*models.Ingredient)}
}

func (a *accumulator) add(category, dosha, status, raw string) {
	name := CleanName(raw)
	if name == "" {
		return
	}
	notes := ExtractNotes(raw)

	rec, ok := a.byName[name]
	if !ok {
		rec = &models.Ingredient{
			Name:      name,
			Category:  category,
			DoshaInfo: make(map[string][]models.DoshaStatus),
		}
		a.byName[name] = rec
		a.order = append(a.order, name)
	} else if rec.Category != category {
		// First occurrence wins; surface the conflict for manual review.
		logger.Warn("ingredient listed under multiple categories, keeping first",
			"name", name, "kept", rec.Category, "ignored", category)
	}

	rec.DoshaInfo[dosha] = append(rec.DoshaInfo[dosha], models.DoshaStatus{
		Status: status,
		Notes:  notes,
	})
}

// records returns the accumulated ingredients in document order.
func (a *accumulator) records() []models.Ingredient {
	out := make([]models.Ingredient, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.byName[name])
	}
	return out
}

// --- list extraction ---

// findListBlock locates the h4 sub-heading whose text matches the status
// (case-insensitive) and returns its parent block, which holds the list.
func findListBlock(column *html.Node, status string) *html.Node {
	h4 := findFirst(column, func(n *html.Node) bool {
		return isElement(n, "h4") &&
			strings.Contains(strings.ToLower(nodeText(n)), strings.ToLower(status))
	})
	if h4 == nil {
		return nil
	}
	return h4.Parent
}

// listItems splits a list block's text into item strings on line-break
// boundaries. The block's own h4 heading is skipped so it is never read as
// an item; fragments still containing raw markup delimiters are dropped as
// a defensive measure against malformed nesting.
func listItems(list *html.Node) []string {
	var sb strings.Builder
	collectLines(list, &sb)

	items := []string{}
	for _, line := range strings.Split(sb.String(), "\n") {
		item := strings.TrimSpace(line)
		if item == "" {
			continue
		}
		if strings.Contains(item, "<") && strings.Contains(item, ">") {
			continue
		}
		items = append(items, item)
	}
	return items
}

func collectLines(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "h4" {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, sb)
	}
}

// --- DOM helpers ---

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return isElement(n, tag) }
}

func elementWithClass(tag string, classes ...string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if !isElement(n, tag) {
			return false
		}
		for _, class := range classes {
			if !hasClass(n, class) {
				return false
			}
		}
		return true
	}
}

// findAll walks the subtree depth-first and collects every matching node.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first matching node in depth-first order.
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// childElements returns direct children only, matching tag and classes.
func childElements(n *html.Node, tag string, classes ...string) []*html.Node {
	pred := elementWithClass(tag, classes...)
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// nodeText concatenates the text content of the subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
