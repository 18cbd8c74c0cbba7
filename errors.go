/*
Copyright © 2024 the MeanOpac authors.
This file is part of MeanOpac.

MeanOpac is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MeanOpac is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MeanOpac.  If not, see <http://www.gnu.org/licenses/>.
*/

package meanopac

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal errors.
type ErrorKind int

// These are the kinds of errors.
const (
	// ConstructionError means that a table could not be built, for example
	// because an opacity evaluation produced NaN.
	ConstructionError ErrorKind = iota

	// StorageError means that a table could not be saved or loaded.
	StorageError

	// ContractError means that a caller supplied invalid arguments.
	ContractError
)

func (k ErrorKind) String() string {
	switch k {
	case ConstructionError:
		return "construction"
	case StorageError:
		return "storage"
	case ContractError:
		return "contract"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is an error of a known kind.
type Error struct {
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

// Unwrap returns the error wrapped by e, if any.
func (e *Error) Unwrap() error { return errors.Unwrap(e.err) }

// Policy specifies what happens when a fatal error is detected.
type Policy int

const (
	// ReturnErrors returns the error to the caller.
	ReturnErrors Policy = iota

	// AbortOnError logs the error at fatal level, which ends the process
	// when Log is a standard logrus logger.
	AbortOnError
)

// ErrorPolicy is the policy applied by Fail.
var ErrorPolicy = ReturnErrors

// Fail creates an error of the given kind with a message formatted as
// by fmt.Errorf and applies ErrorPolicy to it. Every fatal error in this
// module is created by Fail.
func Fail(kind ErrorKind, format string, args ...interface{}) error {
	err := &Error{Kind: kind, err: fmt.Errorf(format, args...)}
	if ErrorPolicy == AbortOnError {
		Log.WithField("kind", kind.String()).Fatal(err.Error())
	}
	return err
}

// IsKind reports whether err is, or wraps, an Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
