// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"sdkgen/plugins/client-ts/tsg"
)

const (
	FactoryName    = "makeSdk"
	clientFnType   = "HttpClientFn"
	callOptionType = "HttpCallOptions"

	banner = "/* eslint-disable */\n" +
		"// Eslint is disabled for performance. This generated file may be large and change a lot.\n"
	bannerEnd = "/* eslint-enable */\n"
)

// RenderFile собирает файл клиента: фабрика makeSdk, тип функции вызова и блок объявлений.
func RenderFile(groups []*Group, declarations *DeclarationBlock) *tsg.File {

	file := tsg.NewFile().Comment(banner)
	file.Add(renderFactory(groups)).Line().Line()
	file.Add(tsg.NewStatement().Interface(callOptionType, func(g *tsg.Group) {
		g.Id("url: string,")
		g.Id("method: string,")
		g.Id("/* params = query vars */").Line().Id("params: Record<string, unknown>,")
		g.Id("data: Record<string, unknown>,")
	})).Line()
	file.Add(tsg.NewStatement().Type(clientFnType).Id("(o: " + callOptionType + ") => Promise<{ data: any }>")).Line().Line()
	file.Raw(bannerEnd)
	if declarations != nil {
		file.Raw(declarations.String())
	}
	return file
}

func renderFactory(groups []*Group) *tsg.Statement {

	return tsg.NewStatement().Func(FactoryName).
		Params(tsg.Id("{ client }: { client: " + clientFnType + " }")).Id(" ").
		Block(func(g *tsg.Group) {
			g.Return(tsg.NewStatement().ObjectLiteral(func(g *tsg.Group) {
				for _, group := range groups {
					g.Add(tsg.Id(tsg.PropertyName(group.Name) + ": ").ObjectLiteral(func(g *tsg.Group) {
						for _, stub := range group.Stubs {
							g.Add(stub.Code())
						}
					}))
				}
			}).Id(" as const"))
		}).Export()
}
