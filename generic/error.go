// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import "reflect"

// TypeError reports a value whose dynamic type cannot be used in some
// operation. Type2, if non-nil, is the type Type was being related
// to, such as the target of a conversion.
type TypeError struct {
	Type, Type2 reflect.Type
	Extra       string
}

func (e *TypeError) Error() string {
	msg := "<nil>"
	if e.Type != nil {
		msg = e.Type.String()
	}
	if e.Type2 != nil {
		msg += " and " + e.Type2.String()
	}
	if e.Extra != "" {
		msg += " " + e.Extra
	}
	return msg
}
