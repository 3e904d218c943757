// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"sdkgen/internal/markdown"
	"sdkgen/internal/model"
)

// RenderReadme справочник по клиенту: группы, методы и выведенные объявления.
func RenderReadme(groups []*Group, declarations *DeclarationBlock) ([]byte, error) {

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("SDK Reference")
	md.PlainTextf("Generated client. Create it with %s and call methods as %s.",
		markdown.Code(FactoryName+"({ client })"), markdown.Code("sdk.<Group>.<method>(...)"))
	md.LF()

	md.H2("Contents")
	for _, group := range groups {
		md.BulletList(markdown.Link(group.Name, "#"+groupAnchorID(group.Name)))
	}
	if declarations != nil && len(declarations.Entries) > 0 {
		md.BulletList(markdown.Link("Types", "#"+generateAnchor("Types")))
	}
	md.LF()

	for _, group := range groups {
		renderGroupReadme(md, group)
	}

	if declarations != nil && len(declarations.Entries) > 0 {
		md.PlainTextf(`<a id="%s"></a>`, generateAnchor("Types"))
		md.H2("Types")
		rows := make([][]string, 0, len(declarations.Entries))
		for _, entry := range declarations.Entries {
			rows = append(rows, []string{markdown.Code(entry.Symbol.Name), string(entry.Kind), entry.Source})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Name", "Kind", "Source"},
			Rows:   rows,
		})
	}

	if err := md.Build(); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func renderGroupReadme(md *markdown.Markdown, group *Group) {

	md.PlainTextf(`<a id="%s"></a>`, groupAnchorID(group.Name))
	md.H2(group.Name)
	if group.Class != nil && group.Class.File != "" {
		md.PlainTextf("Endpoint class %s from %s.", markdown.Code(group.Class.Name), markdown.Code(group.Class.File))
		md.LF()
	}
	if len(group.Stubs) == 0 {
		md.PlainText(markdown.Italic("No methods."))
		md.LF()
		md.HorizontalRule()
		return
	}

	rows := make([][]string, 0, len(group.Stubs))
	for _, stub := range group.Stubs {
		rows = append(rows, []string{
			markdown.Code(stub.Name),
			strings.ToUpper(stub.Verb),
			markdown.Code(stub.Route),
			stub.Return,
		})
	}
	md.CustomTable(markdown.TableSet{
		Header: []string{"Method", "Verb", "URL", "Returns"},
		Rows:   rows,
	}, markdown.TableOptions{})

	for _, stub := range group.Stubs {
		md.H3f("%s.%s", group.Name, stub.Name)
		md.PlainTextf("%s %s returns %s.", strings.ToUpper(stub.Verb), markdown.Code(stub.Route), markdown.Bold(stub.Return))
		md.LF()
		if doc := plainComment(stub.Comment); doc != "" {
			md.PlainText(doc)
			md.LF()
		}
		if len(stub.Args) > 0 {
			argRows := make([][]string, 0, len(stub.Args))
			for _, arg := range stub.Args {
				required := "yes"
				if arg.Optional {
					required = "no"
				}
				argRows = append(argRows, []string{markdown.Code(arg.Name), bindingTitle(arg.Kind), arg.Type, required})
			}
			md.Table(markdown.TableSet{
				Header: []string{"Argument", "Binding", "Type", "Required"},
				Rows:   argRows,
			})
		}
		md.CodeBlocks(markdown.SyntaxHighlightTypeScript, callExample(group.Name, stub))
		md.LF()
	}
	md.HorizontalRule()
}

func bindingTitle(kind model.BindingKind) string {

	switch kind {
	case model.BindPath:
		return "path"
	case model.BindQuery:
		return "query"
	case model.BindBody:
		return "body"
	case model.BindBodyField:
		return "body field"
	default:
		return string(kind)
	}
}

// callExample пример вызова заглушки с именами аргументов.
func callExample(group string, stub *Stub) string {

	var args, fields []string
	for _, arg := range stub.Args {
		if arg.Kind == model.BindBody {
			args = append(args, arg.Name)
			continue
		}
		fields = append(fields, tsBinding(arg.Name))
	}
	if len(fields) > 0 {
		args = append(args, "{ "+strings.Join(fields, ", ")+" }")
	}
	return fmt.Sprintf("const result = await sdk.%s.%s(%s) // %s", group, stub.Name, strings.Join(args, ", "), stub.Return)
}

// plainComment текст комментария без маркеров `/**`, `*` и `//`.
func plainComment(comment string) string {

	var lines []string
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "/**")
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "*")
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func generateAnchor(title string) string {
	anchor := strings.ToLower(title)

	anchor = strings.ReplaceAll(anchor, " ", "-")

	anchor = strings.ReplaceAll(anchor, "/", "-")
	anchor = strings.ReplaceAll(anchor, ":", "-")

	anchor = strings.ReplaceAll(anchor, "_", "-")

	for strings.Contains(anchor, "--") {
		anchor = strings.ReplaceAll(anchor, "--", "-")
	}

	anchor = strings.Trim(anchor, "-")

	if anchor == "" {
		anchor = "section"
	}

	return anchor
}

func groupAnchorID(groupName string) string {

	return "group-" + generateAnchor(groupName)
}
