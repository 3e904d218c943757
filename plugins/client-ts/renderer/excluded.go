// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"path"
	"regexp"

	"sdkgen/internal/common"
	"sdkgen/plugins/client-ts/collector"
)

// Глобальные объявления стандартной библиотеки TypeScript (Promise, Array, Date).
var libFileRe = regexp.MustCompile(`^lib(\.[A-Za-z0-9_-]+)*\.d\.ts$`)

// ExcludedSymbol символ, на который ссылается выведенный код, но чьё объявление не выведено.
type ExcludedSymbol struct {
	Name   string
	Reason collector.ExclusionReason
	Source string
}

// ExcludedReport исключённые символы, достигнутые при обходе. Глобальные типы
// из lib.*.d.ts не попадают в отчёт.
func ExcludedReport(excluded []collector.Exclusion, projectRoot string) (report []ExcludedSymbol) {

	for _, exclusion := range excluded {
		if exclusion.Origin != "" && libFileRe.MatchString(path.Base(exclusion.Origin)) {
			continue
		}
		report = append(report, ExcludedSymbol{
			Name:   exclusion.Symbol.Name,
			Reason: exclusion.Reason,
			Source: common.RelativePath(projectRoot, exclusion.Origin),
		})
	}
	return
}
