// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ianlewis/go-kanjidict"
)

// Sheet is the name of the worksheet written by WriteXLSX.
const Sheet = "Kanji"

// WriteXLSX writes the entries as a workbook with a single sheet holding
// the same columns as WriteTSV.
func WriteXLSX(w io.Writer, entries []*kanjidict.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), Sheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	write := func(row int, cells []string) error {
		for i, v := range cells {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("xlsx cell: %w", err)
			}
			if err := f.SetCellStr(Sheet, cell, v); err != nil {
				return fmt.Errorf("xlsx cell %s: %w", cell, err)
			}
		}
		return nil
	}

	if err := write(1, Columns); err != nil {
		return err
	}
	for i, e := range entries {
		if err := write(i+2, Row(e)); err != nil {
			return err
		}
	}

	// Widen the free text columns.
	_ = f.SetColWidth(Sheet, "C", "C", 28) // meaning
	_ = f.SetColWidth(Sheet, "G", "G", 48) // examples
	_ = f.SetColWidth(Sheet, "H", "I", 60) // etymology, mnemonic
	_ = f.SetColWidth(Sheet, "J", "J", 32) // images

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
