// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"errors"

	"sdkgen/internal/introspect"
	"sdkgen/internal/validate"
)

var (
	ErrMultipleBodies  = validate.ErrMultipleBodies
	ErrDuplicateParams = validate.ErrDuplicateParams
	ErrPathParam       = validate.ErrPathParam
	ErrNoDeclarations  = introspect.ErrNoDeclarations
	// ErrParamNotFound привязка ссылается на параметр, которого нет в сигнатуре.
	ErrParamNotFound = errors.New("bound parameter not found in signature")
)
