// Package ioformat is the solver's external-format boundary: a CSV
// instance loader and a JSON solution writer. Neither is imported by
// internal/solver or internal/solution directly — callers go through
// those packages' own named types (instance.Instance, solution.Solution)
// so the core stays ignorant of any particular file format. Grounded on
// internal/tablebase's role as the "reads external data files" layer,
// generalized from tablebase probes to Roadef2018-style CSV tables.
package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solverrors"
)

// LoadItems reads an items table: id,stack,pos,width,height,profit,copies,oriented.
// The header row (if present) is detected by a non-numeric first field
// and skipped.
func LoadItems(r io.Reader) ([]instance.Item, error) {
	rows, err := readCSV(r, 8)
	if err != nil {
		return nil, err
	}

	items := make([]instance.Item, 0, len(rows))
	for lineNo, row := range rows {
		id, err1 := strconv.ParseInt(row[0], 10, 32)
		stack, err2 := strconv.ParseInt(row[1], 10, 32)
		pos, err3 := strconv.ParseInt(row[2], 10, 32)
		w, err4 := strconv.ParseInt(row[3], 10, 64)
		h, err5 := strconv.ParseInt(row[4], 10, 64)
		profit, err6 := strconv.ParseInt(row[5], 10, 64)
		copies, err7 := strconv.ParseInt(row[6], 10, 32)
		oriented, err8 := strconv.ParseBool(row[7])
		if err := firstErr(err1, err2, err3, err4, err5, err6, err7, err8); err != nil {
			return nil, solverrors.NewConfigError(fmt.Sprintf("items table line %d", lineNo+1), err)
		}
		items = append(items, instance.Item{
			Id:       instance.ItemTypeId(id),
			Stack:    instance.StackId(stack),
			Pos:      instance.ItemPos(pos),
			W:        w,
			H:        h,
			Profit:   profit,
			Copies:   int32(copies),
			Oriented: oriented,
		})
	}
	return items, nil
}

// LoadBins reads a bins table: width,height,copies. Defects for these
// bins are attached separately via LoadDefects.
func LoadBins(r io.Reader) ([]instance.Bin, error) {
	rows, err := readCSV(r, 3)
	if err != nil {
		return nil, err
	}

	bins := make([]instance.Bin, 0, len(rows))
	for lineNo, row := range rows {
		w, err1 := strconv.ParseInt(row[0], 10, 64)
		h, err2 := strconv.ParseInt(row[1], 10, 64)
		copies, err3 := strconv.ParseInt(row[2], 10, 32)
		if err := firstErr(err1, err2, err3); err != nil {
			return nil, solverrors.NewConfigError(fmt.Sprintf("bins table line %d", lineNo+1), err)
		}
		bins = append(bins, instance.Bin{W: w, H: h, Copies: int32(copies)})
	}
	return bins, nil
}

// LoadDefects reads a defects table: id,bin,x,y,width,height, and
// attaches each defect to its bin's Defects slice in place.
func LoadDefects(r io.Reader, bins []instance.Bin) error {
	rows, err := readCSV(r, 6)
	if err != nil {
		return err
	}

	for lineNo, row := range rows {
		id, err1 := strconv.ParseInt(row[0], 10, 32)
		bin, err2 := strconv.ParseInt(row[1], 10, 32)
		x, err3 := strconv.ParseInt(row[2], 10, 64)
		y, err4 := strconv.ParseInt(row[3], 10, 64)
		w, err5 := strconv.ParseInt(row[4], 10, 64)
		h, err6 := strconv.ParseInt(row[5], 10, 64)
		if err := firstErr(err1, err2, err3, err4, err5, err6); err != nil {
			return solverrors.NewConfigError(fmt.Sprintf("defects table line %d", lineNo+1), err)
		}
		if int(bin) >= len(bins) {
			return solverrors.NewConfigError(fmt.Sprintf("defects table line %d: bin %d out of range", lineNo+1, bin), nil)
		}
		bins[bin].Defects = append(bins[bin].Defects, instance.Defect{
			Id:  instance.DefectId(id),
			Bin: instance.BinPos(bin),
			Rect: instance.Rect{X: x, Y: y, W: w, H: h},
		})
	}
	return nil
}

// readCSV parses r as CSV, skipping a leading header row if its first
// field fails to parse as an integer, and requires exactly wantFields
// per row.
func readCSV(r io.Reader, wantFields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	all, err := cr.ReadAll()
	if err != nil {
		return nil, solverrors.NewConfigError("parsing CSV", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	if _, err := strconv.ParseInt(all[0][0], 10, 64); err != nil {
		all = all[1:]
	}
	for i, row := range all {
		if len(row) != wantFields {
			return nil, solverrors.NewConfigError(fmt.Sprintf("line %d: expected %d fields, got %d", i+1, wantFields, len(row)), nil)
		}
	}
	return all, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
