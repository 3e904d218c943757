// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"strings"

	"sdkgen/plugins/client-ts/tsg"
)

var tsReservedToSafe = map[string]string{
	"in":         "input",
	"default":    "defaultValue",
	"class":      "className",
	"type":       "typeName",
	"delete":     "deleteKey",
	"return":     "returnValue",
	"switch":     "switchValue",
	"throw":      "throwValue",
	"try":        "tryValue",
	"var":        "varValue",
	"while":      "whileValue",
	"with":       "withValue",
	"yield":      "yieldValue",
	"let":        "letValue",
	"const":      "constValue",
	"static":     "staticValue",
	"implements": "implementsValue",
	"interface":  "interfaceValue",
	"package":    "packageValue",
	"private":    "privateValue",
	"protected":  "protectedValue",
	"public":     "publicValue",
	"extends":    "extendsValue",
	"enum":       "enumValue",
	"export":     "exportValue",
	"import":     "importValue",
	"await":      "awaitValue",
	"async":      "asyncValue",
	"break":      "breakValue",
	"case":       "caseValue",
	"catch":      "catchValue",
	"continue":   "continueValue",
	"debugger":   "debuggerValue",
	"do":         "doValue",
	"else":       "elseValue",
	"finally":    "finallyValue",
	"for":        "forValue",
	"function":   "functionValue",
	"if":         "ifValue",
	"new":        "newValue",
	"this":       "thisValue",
	"typeof":     "typeofValue",
	"void":       "voidValue",
}

func tsSafeName(name string) string {

	if name == "" {
		return name
	}
	if safe, ok := tsReservedToSafe[strings.ToLower(name)]; ok {
		return safe
	}
	return name
}

// tsLocalVar имя локальной переменной для поля name при деструктуризации.
func tsLocalVar(name string) string {

	if tsg.IsIdentifier(name) {
		return tsSafeName(name)
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// tsBinding элемент деструктуризации или литерала объекта: `name` или `"x-y": x_y`.
func tsBinding(name string) string {

	if local := tsLocalVar(name); local != name {
		return tsg.PropertyName(name) + ": " + local
	}
	return name
}
