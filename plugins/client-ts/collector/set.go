// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package collector

import (
	"sdkgen/internal/model"
)

// CollectedSet упорядоченное по вставке множество символов на один запуск генерации.
// Символ попадает в множество не более одного раза и никогда не удаляется.
type CollectedSet struct {
	order []*model.Symbol
	index map[model.SymbolID]int
}

func NewCollectedSet() *CollectedSet {
	return &CollectedSet{index: make(map[model.SymbolID]int)}
}

// Add добавляет символ. Возвращает false, если символ уже был в множестве.
func (s *CollectedSet) Add(sym *model.Symbol) bool {

	if sym == nil {
		return false
	}
	if _, found := s.index[sym.ID]; found {
		return false
	}
	s.index[sym.ID] = len(s.order)
	s.order = append(s.order, sym)
	return true
}

func (s *CollectedSet) Has(id model.SymbolID) bool {

	_, found := s.index[id]
	return found
}

func (s *CollectedSet) Len() int {
	return len(s.order)
}

// Symbols возвращает копию символов в порядке первого обнаружения.
func (s *CollectedSet) Symbols() []*model.Symbol {

	out := make([]*model.Symbol, len(s.order))
	copy(out, s.order)
	return out
}

// VisitedGuard символы и выражения, уже посещённые при обходе одного корня.
type VisitedGuard struct {
	symbols map[model.SymbolID]struct{}
	types   map[model.TypeID]struct{}
}

func NewVisitedGuard() *VisitedGuard {
	return &VisitedGuard{
		symbols: make(map[model.SymbolID]struct{}),
		types:   make(map[model.TypeID]struct{}),
	}
}

func (g *VisitedGuard) HasSymbol(id model.SymbolID) bool {

	_, found := g.symbols[id]
	return found
}

// enterSymbol отмечает символ посещённым. false - уже был посещён.
func (g *VisitedGuard) enterSymbol(id model.SymbolID) bool {

	if _, found := g.symbols[id]; found {
		return false
	}
	g.symbols[id] = struct{}{}
	return true
}

// enterType отмечает выражение посещённым. Выражения без ID не отслеживаются.
func (g *VisitedGuard) enterType(id model.TypeID) bool {

	if id == "" {
		return true
	}
	if _, found := g.types[id]; found {
		return false
	}
	g.types[id] = struct{}{}
	return true
}
