package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
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

// StripTags walks the markup with the html tokenizer and keeps only
// text content, one tokenizer text run per line. Script and style
// bodies are dropped entirely.
func StripTags(markup string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	var out strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return out.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isNonContentTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isNonContentTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			// Raw, not Text: entity decoding is the caller's call.
			text := strings.TrimSpace(string(tokenizer.Raw()))
			if text == "" {
				continue
			}
			out.WriteString(text)
			out.WriteByte('\n')
		}
	}
}

func isNonContentTag(name string) bool {
	return name == "script" || name == "style" || name == "noscript"
}

func RemoveNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}
