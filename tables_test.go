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
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"
)

func TestTableFileLoadInvalid(t *testing.T) {
	tf := TableFile{Dims: []string{"lRho", "lT"}, PlanckKey: "P", RosselandKey: "R"}
	dir := t.TempDir()

	if _, _, _, err := tf.Load("test", filepath.Join(dir, "missing.nc")); !IsKind(err, StorageError) {
		t.Errorf("missing file: expected StorageError, got %v", err)
	}

	path := filepath.Join(dir, "rank5.nc")
	w, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	dims := []string{"a", "b", "c", "d", "e"}
	h := cdf.NewHeader(dims, []int{2, 1, 1, 1, 2})
	h.AddVariable("P", dims, []float64{0})
	h.AddVariable("R", dims, []float64{0})
	h.Define()
	if _, err = cdf.Create(w, h); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if _, _, _, err = tf.Load("test", path); !IsKind(err, StorageError) {
		t.Errorf("rank 5 tables: expected StorageError, got %v", err)
	}
}
