// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"fmt"
	"strings"

	"sdkgen/internal/common"
	"sdkgen/internal/model"
	"sdkgen/plugins/client-ts/collector"
)

// DeclarationSource часть сервиса интроспекции, нужная для вывода объявлений.
type DeclarationSource interface {
	Declarations(sym *model.Symbol) []*model.Declaration
	OriginOf(decl *model.Declaration) string
}

// DeclarationEntry одно выведенное объявление.
type DeclarationEntry struct {
	Symbol *model.Symbol
	Kind   model.DeclKind
	// Source путь исходного файла относительно корня проекта.
	Source string
	Text   string
}

// DeclarationBlock объявления в порядке добавления символов в набор.
type DeclarationBlock struct {
	Entries []DeclarationEntry
}

// EmitDeclarations собирает объявления символов набора. Выводятся только
// объявления классов, интерфейсов, перечислений, псевдонимов и переменных.
func EmitDeclarations(set *collector.CollectedSet, source DeclarationSource, projectRoot string) (block *DeclarationBlock, err error) {

	block = &DeclarationBlock{}
	for _, sym := range set.Symbols() {
		decls := source.Declarations(sym)
		if len(decls) == 0 {
			return nil, fmt.Errorf("%w: %s (%s)", ErrNoDeclarations, sym.Name, sym.ID)
		}
		for _, decl := range decls {
			if !decl.Kind.Emittable() {
				continue
			}
			block.Entries = append(block.Entries, DeclarationEntry{
				Symbol: sym,
				Kind:   decl.Kind,
				Source: common.RelativePath(projectRoot, source.OriginOf(decl)),
				Text:   decl.Text,
			})
		}
	}
	return block, nil
}

func (b *DeclarationBlock) String() string {

	var buf strings.Builder
	for _, entry := range b.Entries {
		buf.WriteString("// Source: " + entry.Source + "\n")
		buf.WriteString(entry.Text)
		buf.WriteString("\n\n")
	}
	return buf.String()
}
