// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type File struct {
	comment    string
	statements []*Statement
}

func NewFile() *File {
	return &File{statements: make([]*Statement, 0)}
}

// Comment заголовок файла, пишется как есть.
func (f *File) Comment(comment string) *File {

	f.comment = comment
	return f
}

func (f *File) Add(stmt *Statement) *File {

	if stmt != nil {
		f.statements = append(f.statements, stmt)
	}
	return f
}

func (f *File) Line() *File {

	f.statements = append(f.statements, NewStatement().Line())
	return f
}

// Raw добавляет готовый текст без изменений.
func (f *File) Raw(text string) *File {
	return f.Add(NewStatement().Id(text))
}

func (f *File) String() string {

	var buf strings.Builder
	buf.WriteString(f.comment)
	for _, stmt := range f.statements {
		buf.WriteString(stmt.String())
	}
	return buf.String()
}

func (f *File) Bytes() []byte {
	return []byte(f.String())
}

// Save записывает файл, только если содержимое отличается от существующего.
func (f *File) Save(filename string) (changed bool, err error) {
	return WriteIfChanged(filename, f.Bytes())
}

// WriteIfChanged записывает data в filename, если содержимое файла отличается.
func WriteIfChanged(filename string, data []byte) (changed bool, err error) {

	var current []byte
	if current, err = os.ReadFile(filename); err == nil && bytes.Equal(current, data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err = os.MkdirAll(filepath.Dir(filename), 0777); err != nil {
		return false, err
	}
	if err = os.WriteFile(filename, data, 0600); err != nil {
		return false, err
	}
	return true, nil
}
