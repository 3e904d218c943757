// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package introspect

import (
	"errors"
	"fmt"

	"sdkgen/internal/model"
)

var (
	ErrClassNotFound    = errors.New("endpoint class not found")
	ErrMethodNotFound   = errors.New("endpoint method not found")
	ErrNoCallSignature  = errors.New("method has no call signature")
	ErrSymbolNotFound   = errors.New("symbol not found")
	ErrTypeNotFound     = errors.New("type not found")
	ErrNoDeclarations   = errors.New("symbol has no declarations")
	ErrPositionNotFound = errors.New("position not found")
)

// Position место в исходниках, тип которого запрашивается у Service.
type Position struct {
	Class  string
	Method string
	// Param индекс параметра; -1 означает возвращаемое значение.
	Param int
}

// ReturnPosition позиция возвращаемого значения метода.
func ReturnPosition(class, method string) Position {

	return Position{Class: class, Method: method, Param: -1}
}

func (p Position) String() string {

	if p.Param < 0 {
		return fmt.Sprintf("%s.%s: return", p.Class, p.Method)
	}
	return fmt.Sprintf("%s.%s: param #%d", p.Class, p.Method, p.Param)
}

// Service запросы к графу типов. Только чтение, без побочных эффектов.
type Service interface {
	TypeOf(pos Position) (*model.TypeExpression, error)
	Signature(class, method string) (*model.Signature, error)
	Declarations(sym *model.Symbol) []*model.Declaration
	Members(sym *model.Symbol) []model.Member
	LeadingComment(decl *model.Declaration) (comment string, ok bool)
	OriginOf(decl *model.Declaration) string
	TypeText(expr *model.TypeExpression) string
}

// Registry перечисляет классы эндпоинтов в фиксированном порядке.
type Registry interface {
	ListEndpoints() ([]*model.EndpointClass, error)
}
