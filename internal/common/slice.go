// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

// SliceStringToSet множество непустых строк среза.
func SliceStringToSet(slice []string) (m map[string]struct{}) {

	m = make(map[string]struct{}, len(slice))
	for _, v := range slice {
		if v != "" {
			m[v] = struct{}{}
		}
	}
	return
}
