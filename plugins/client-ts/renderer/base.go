// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"sdkgen/internal/common"
	"sdkgen/internal/introspect"
	"sdkgen/internal/model"
)

// TypeCollector принимает корни обхода графа типов.
type TypeCollector interface {
	CollectRoot(expr *model.TypeExpression) error
}

type Options struct {
	// VoidTypes имена типов, которые в заглушке превращаются в Promise<void>.
	VoidTypes []string
}

type ClientRenderer struct {
	service   introspect.Service
	collector TypeCollector
	voidTypes map[string]struct{}
}

func NewClientRenderer(service introspect.Service, collector TypeCollector, opts Options) *ClientRenderer {
	return &ClientRenderer{
		service:   service,
		collector: collector,
		voidTypes: common.SliceStringToSet(opts.VoidTypes),
	}
}

// Group методы одного класса эндпоинтов под общим ключом makeSdk.
type Group struct {
	Name  string
	Class *model.EndpointClass
	Stubs []*Stub
}
