// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "errors"

// ErrMismatchColumn is returned when the number of columns in the record doesn't match the header.
var ErrMismatchColumn = errors.New("number of columns in the record doesn't match the header")
