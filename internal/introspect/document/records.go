// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package document

// Document дамп графа типов, выгруженный из компилятора фронтенда.
type Document struct {
	Version     string         `json:"version" yaml:"version"`
	ProjectRoot string         `json:"projectRoot,omitempty" yaml:"projectRoot,omitempty"`
	Symbols     []SymbolRecord `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	Types       []TypeRecord   `json:"types,omitempty" yaml:"types,omitempty"`
	Classes     []ClassRecord  `json:"classes,omitempty" yaml:"classes,omitempty"`
}

type SymbolRecord struct {
	ID           string              `json:"id" yaml:"id"`
	Name         string              `json:"name" yaml:"name"`
	Flags        []string            `json:"flags,omitempty" yaml:"flags,omitempty"`
	Parent       string              `json:"parent,omitempty" yaml:"parent,omitempty"`
	Declarations []DeclarationRecord `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	Members      []MemberRecord      `json:"members,omitempty" yaml:"members,omitempty"`
}

type DeclarationRecord struct {
	Kind    string `json:"kind" yaml:"kind"`
	File    string `json:"file" yaml:"file"`
	Pos     int    `json:"pos,omitempty" yaml:"pos,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
	AliasOf string `json:"aliasOf,omitempty" yaml:"aliasOf,omitempty"`
}

type MemberRecord struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

type AliasRecord struct {
	Symbol string   `json:"symbol" yaml:"symbol"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty"`
}

type TypeRecord struct {
	ID       string       `json:"id" yaml:"id"`
	Kind     string       `json:"kind" yaml:"kind"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Literal  any          `json:"literal,omitempty" yaml:"literal,omitempty"`
	Symbol   string       `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	TypeArgs []string     `json:"typeArgs,omitempty" yaml:"typeArgs,omitempty"`
	Types    []string     `json:"types,omitempty" yaml:"types,omitempty"`
	Check    string       `json:"check,omitempty" yaml:"check,omitempty"`
	Extends  string       `json:"extends,omitempty" yaml:"extends,omitempty"`
	True     string       `json:"true,omitempty" yaml:"true,omitempty"`
	False    string       `json:"false,omitempty" yaml:"false,omitempty"`
	Object   string       `json:"object,omitempty" yaml:"object,omitempty"`
	Index    string       `json:"index,omitempty" yaml:"index,omitempty"`
	Alias    *AliasRecord `json:"alias,omitempty" yaml:"alias,omitempty"`
	Text     string       `json:"text,omitempty" yaml:"text,omitempty"`
}

type ClassRecord struct {
	Name    string         `json:"name" yaml:"name"`
	Route   string         `json:"route,omitempty" yaml:"route,omitempty"`
	File    string         `json:"file,omitempty" yaml:"file,omitempty"`
	Methods []MethodRecord `json:"methods,omitempty" yaml:"methods,omitempty"`
}

type MethodRecord struct {
	Name      string           `json:"name" yaml:"name"`
	Verb      string           `json:"verb,omitempty" yaml:"verb,omitempty"`
	Route     string           `json:"route,omitempty" yaml:"route,omitempty"`
	Comment   string           `json:"comment,omitempty" yaml:"comment,omitempty"`
	Pos       int              `json:"pos,omitempty" yaml:"pos,omitempty"`
	Signature *SignatureRecord `json:"signature,omitempty" yaml:"signature,omitempty"`
	Bindings  []BindingRecord  `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

type SignatureRecord struct {
	Params []ParamRecord `json:"params,omitempty" yaml:"params,omitempty"`
	Return string        `json:"return,omitempty" yaml:"return,omitempty"`
}

type ParamRecord struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

type BindingRecord struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	// Index позиция параметра; если не задана, параметр ищется по имени.
	Index        *int   `json:"index,omitempty" yaml:"index,omitempty"`
	Optional     bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	ExplicitType string `json:"explicitType,omitempty" yaml:"explicitType,omitempty"`
	IsArray      bool   `json:"isArray,omitempty" yaml:"isArray,omitempty"`
}
