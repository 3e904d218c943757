// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const lineFeed = "\n"

type SyntaxHighlight string

const (
	SyntaxHighlightNone       SyntaxHighlight = ""
	SyntaxHighlightText       SyntaxHighlight = "text"
	SyntaxHighlightShell      SyntaxHighlight = "shell"
	SyntaxHighlightJSON       SyntaxHighlight = "json"
	SyntaxHighlightYAML       SyntaxHighlight = "yaml"
	SyntaxHighlightTypeScript SyntaxHighlight = "typescript"
)

type Markdown struct {
	body []string
	dest io.Writer
	err  error
}

func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{
		body: []string{},
		dest: w,
	}
}

func (m *Markdown) String() string {
	return strings.Join(m.body, lineFeed)
}

func (m *Markdown) Error() error {
	return m.err
}

func (m *Markdown) PlainText(text string) *Markdown {
	m.body = append(m.body, text)
	return m
}

func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	return m.PlainText(fmt.Sprintf(format, args...))
}

func (m *Markdown) Build() error {
	if _, err := fmt.Fprint(m.dest, m.String()); err != nil {
		if m.err != nil {
			return fmt.Errorf("failed to write markdown text: %w: %s", err, m.err.Error()) //nolint:wrapcheck
		}
		return fmt.Errorf("failed to write markdown text: %w", err)
	}
	return m.err
}

func (m *Markdown) H1(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("# %s", text))
	return m
}

func (m *Markdown) H2(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("## %s", text))
	return m
}

func (m *Markdown) H3(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("### %s", text))
	return m
}

func (m *Markdown) H3f(format string, args ...any) *Markdown {
	return m.H3(fmt.Sprintf(format, args...))
}

func (m *Markdown) BulletList(text ...string) *Markdown {
	for _, v := range text {
		m.body = append(m.body, fmt.Sprintf("- %s", v))
	}
	return m
}

func (m *Markdown) CodeBlocks(lang SyntaxHighlight, text string) *Markdown {
	m.body = append(m.body,
		fmt.Sprintf("```%s%s%s%s```", lang, lineFeed, text, lineFeed))
	return m
}

func (m *Markdown) HorizontalRule() *Markdown {
	m.body = append(m.body, "---")
	return m
}

func (m *Markdown) LF() *Markdown {
	m.body = append(m.body, "  ")
	return m
}

type TableAlignment int

const (
	AlignDefault TableAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

type TableSet struct {
	Header    []string
	Rows      [][]string
	Alignment []TableAlignment
}

func (t *TableSet) ValidateColumns() error {
	headerColumns := len(t.Header)
	for _, record := range t.Rows {
		if len(record) != headerColumns {
			return ErrMismatchColumn
		}
	}
	return nil
}

// Table таблица в формате GFM; символ `|` в ячейках экранируется.
func (m *Markdown) Table(t TableSet) *Markdown {
	if err := t.ValidateColumns(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to validate columns: %w", err))
		return m
	}

	if len(t.Header) == 0 {
		return m
	}

	var buf strings.Builder

	writeRow := func(cells []string) {
		buf.WriteString("|")
		for _, cell := range cells {
			buf.WriteString(" ")
			buf.WriteString(EscapeCell(cell))
			buf.WriteString(" |")
		}
		buf.WriteString(lineFeed)
	}

	writeRow(t.Header)
	buf.WriteString("|")
	for i := range t.Header {
		align := AlignDefault
		if i < len(t.Alignment) {
			align = t.Alignment[i]
		}

		switch align {
		case AlignDefault:
			buf.WriteString("---------|")
		case AlignLeft:
			buf.WriteString(":--------|")
		case AlignCenter:
			buf.WriteString(":-------:|")
		case AlignRight:
			buf.WriteString("--------:|")
		}
	}
	buf.WriteString(lineFeed)
	for _, row := range t.Rows {
		writeRow(row)
	}

	m.body = append(m.body, buf.String())
	return m
}

type TableOptions struct {
	// AutoWrapText is whether to wrap the text automatically.
	AutoWrapText bool
	// AutoFormatHeaders is whether to format the header automatically.
	AutoFormatHeaders bool
}

// CustomTable таблица с выравниванием колонок через tablewriter.
func (m *Markdown) CustomTable(t TableSet, options TableOptions) *Markdown {
	if err := t.ValidateColumns(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to validate columns: %w", err))
		return m
	}

	state := func(on bool) tw.State {
		if on {
			return tw.Success
		}
		return tw.Fail
	}
	wrap := tw.WrapNone
	if options.AutoWrapText {
		wrap = tw.WrapNormal
	}

	buf := &strings.Builder{}
	table := tablewriter.NewTable(
		buf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{
						Left:   tw.On,
						Top:    tw.Off,
						Right:  tw.On,
						Bottom: tw.Off,
					},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: state(options.AutoFormatHeaders)},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: wrap, AutoFormat: state(options.AutoFormatHeaders)},
				Alignment:  tw.CellAlignment{Global: tw.AlignNone},
			},
		}),
	)

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		escaped := make([]string, len(row))
		for i, cell := range row {
			escaped[i] = EscapeCell(cell)
		}
		rows = append(rows, escaped)
	}

	table.Header(t.Header)
	if err := table.Bulk(rows); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to add rows to table: %w", err))
		return m
	}
	if err := table.Render(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to render table: %w", err))
		return m
	}

	m.body = append(m.body, buf.String())
	return m
}

// EscapeCell готовит текст к размещению в ячейке таблицы.
func EscapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", `\|`)
	return strings.ReplaceAll(text, "\n", " ")
}
