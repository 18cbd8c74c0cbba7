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
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFail(t *testing.T) {
	cause := errors.New("disk full")
	err := Fail(StorageError, "photons.MeanSOpacity: %w", cause)
	if !IsKind(err, StorageError) || IsKind(err, ConstructionError) {
		t.Errorf("kind of %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be wrapped")
	}
	if want := "photons.MeanSOpacity: disk full"; err.Error() != want {
		t.Errorf("%q, want %q", err.Error(), want)
	}
	if IsKind(cause, StorageError) {
		t.Error("plain errors have no kind")
	}
}

func TestAbortOnError(t *testing.T) {
	oldLog, oldPolicy := Log, ErrorPolicy
	defer func() { Log, ErrorPolicy = oldLog, oldPolicy }()

	l := logrus.New()
	l.Out = io.Discard
	var exitCode int
	exited := false
	l.ExitFunc = func(code int) {
		exited = true
		exitCode = code
	}
	Log = l
	ErrorPolicy = AbortOnError

	Fail(ConstructionError, "neutrinos.MeanOpacity: NaN")
	if !exited || exitCode != 1 {
		t.Errorf("exited = %v with code %d; want exit with code 1", exited, exitCode)
	}
}
