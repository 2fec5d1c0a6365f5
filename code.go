package clicycle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// CodeBlock describes one syntax-highlighted source listing.
type CodeBlock struct {
	Source      string
	Language    string
	Title       string
	LineNumbers bool
}

// Code renders a syntax-highlighted block. Unknown languages fall back
// to the plain-text lexer; highlighting failures fall back to the raw
// source rather than erroring.
func (c *Clicycle) Code(block CodeBlock) {
	c.render(theme.KindCode, func(w io.Writer) {
		if block.Title != "" {
			fmt.Fprintln(w, c.theme.Typography.BlockTitle.Render(block.Title))
		}
		c.writeHighlighted(w, block.Source, block.Language, block.LineNumbers)
	})
}

// JSON marshals v with indentation and renders it highlighted as JSON.
// Returns the marshal error unmodified when v cannot be encoded; nothing
// is rendered or recorded in that case.
func (c *Clicycle) JSON(v any, title string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("clicycle: marshaling json: %w", err)
	}

	c.render(theme.KindJSON, func(w io.Writer) {
		if title != "" {
			fmt.Fprintln(w, c.theme.Typography.BlockTitle.Render(title))
		}
		c.writeHighlighted(w, string(data), "json", false)
	})
	return nil
}

// writeHighlighted emits source through chroma's terminal256 formatter
// using the theme's highlight style, with optional line numbers in the
// gutter style.
func (c *Clicycle) writeHighlighted(w io.Writer, source, language string, lineNumbers bool) {
	highlighted := c.highlight(source, language)
	if !lineNumbers {
		fmt.Fprintln(w, strings.TrimRight(highlighted, "\n"))
		return
	}

	lines := strings.Split(strings.TrimRight(highlighted, "\n"), "\n")
	gutterWidth := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		number := fmt.Sprintf("%*d", gutterWidth, i+1)
		fmt.Fprintln(w, c.theme.Typography.LineNumber.Render(number)+"  "+line)
	}
}

func (c *Clicycle) highlight(source, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(c.theme.Layout.CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}
