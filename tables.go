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

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/meanopac/databox"
)

// TableFile describes how a pair of Planck and Rosseland mean tables is
// laid out in a NetCDF file.
type TableFile struct {
	// Comment is stored as the file's comment attribute.
	Comment string

	// Dims names the table dimensions, slowest-varying first.
	Dims []string

	// PlanckKey and RosselandKey are the names of the table variables.
	PlanckKey, RosselandKey string
}

// Save writes the planck and rosseland tables and the auxiliary parameter
// count nlambda to a new file at path. name prefixes error messages.
func (tf TableFile) Save(name, path string, planck, rosseland *databox.DataBox, nlambda int) error {
	w, err := os.Create(path)
	if err != nil {
		return Fail(StorageError, "%s: %w", name, err)
	}
	attrs := map[string]interface{}{
		"comment":      tf.Comment,
		"data_version": DataVersion,
		"nlambda":      []int32{int32(nlambda)},
	}
	err = databox.Write(w, tf.Dims, attrs,
		databox.Variable{Name: tf.PlanckKey, Box: planck},
		databox.Variable{Name: tf.RosselandKey, Box: rosseland},
	)
	if err != nil {
		w.Close()
		return Fail(StorageError, "%s: %w", name, err)
	}
	if err = w.Close(); err != nil {
		return Fail(StorageError, "%s: %w", name, err)
	}
	Log.WithFields(logrus.Fields{"file": path, "tables": name}).Info("saved mean opacity tables")
	return nil
}

// Load reads tables saved by Save from the file at path.
func (tf TableFile) Load(name, path string) (planck, rosseland *databox.DataBox, nlambda int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, Fail(StorageError, "%s: %w", name, err)
	}
	defer f.Close()

	boxes, attrs, err := databox.Read(f, tf.PlanckKey, tf.RosselandKey)
	if err != nil {
		return nil, nil, 0, Fail(StorageError, "%s: %w", name, err)
	}
	if v, ok := attrs["data_version"].(string); !ok || v != DataVersion {
		return nil, nil, 0, Fail(StorageError, "%s: data version %v is incompatible with the required version %s",
			name, attrs["data_version"], DataVersion)
	}
	nl, ok := attrs["nlambda"].([]int32)
	if !ok || len(nl) != 1 {
		return nil, nil, 0, Fail(StorageError, "%s: missing nlambda attribute", name)
	}
	for _, b := range boxes {
		if b.Rank() != len(tf.Dims) {
			return nil, nil, 0, Fail(StorageError, "%s: tables have rank %d; want %d",
				name, b.Rank(), len(tf.Dims))
		}
	}
	return boxes[0], boxes[1], int(nl[0]), nil
}
