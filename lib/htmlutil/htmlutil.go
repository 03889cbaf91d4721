package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return strings.TrimSpace(buffer.String())
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

func GetAttr(node *html.Node, key string) (string, bool) {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// FirstCellAnchor returns the first <a> inside the first <td> of a table row.
func FirstCellAnchor(row *goquery.Selection) *html.Node {
	cell := row.Find("td").First()
	if cell.Length() == 0 {
		return nil
	}
	anchor := cell.Find("a").First()
	if anchor.Length() == 0 {
		return nil
	}
	return anchor.Nodes[0]
}

// LastPathSegment returns everything after the final "/" of the href, with
// any query or fragment cut off. The segment is returned as written in the
// link, percent escapes are not decoded.
func LastPathSegment(href string) string {
	idx := strings.IndexAny(href, "?#")
	if idx >= 0 {
		href = href[:idx]
	}
	return href[strings.LastIndex(href, "/")+1:]
}
