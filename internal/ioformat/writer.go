package ioformat

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solution"
)

// solutionDoc is the JSON export shape: one row per placed item, plus
// the aggregate figures already tracked by the search.
type solutionDoc struct {
	BinsUsed    int               `json:"bins_used"`
	ItemsPlaced int               `json:"items_placed"`
	Profit      int64             `json:"profit"`
	Waste       int64             `json:"waste"`
	Full        bool              `json:"full"`
	Items       []solutionItemDoc `json:"items"`
}

type solutionItemDoc struct {
	ItemId  int32 `json:"item_id"`
	Bin     int32 `json:"bin"`
	X       int64 `json:"x"`
	Y       int64 `json:"y"`
	Width   int64 `json:"width"`
	Height  int64 `json:"height"`
	Rotated bool  `json:"rotated"`
}

// WriteJSON writes sol to w as the Roadef2018-style placement document:
// bin id, item id, x, y, width, height and rotated flag per placed item,
// in the bin's physical (un-oriented) coordinate frame.
func WriteJSON(w io.Writer, sol *solution.Solution) error {
	doc := solutionDoc{
		BinsUsed:    sol.BinsUsed,
		ItemsPlaced: sol.ItemsPlaced,
		Profit:      sol.Profit,
		Waste:       sol.Waste,
		Full:        sol.Full,
		Items:       make([]solutionItemDoc, 0, len(sol.Items)),
	}
	for _, p := range sol.Items {
		r := p.PhysicalRect()
		doc.Items = append(doc.Items, solutionItemDoc{
			ItemId: p.ItemId, Bin: p.Bin,
			X: r.X, Y: r.Y, Width: r.W, Height: r.H,
			Rotated: p.Rotated,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadJSON reads back a document written by WriteJSON. Since the
// document stores each item's bin-physical rectangle (not the
// branching scheme's oriented frame), the returned PlacedItems carry
// Orientation Vertical — under which PhysicalRect is the identity — so
// Check still sees the same physical geometry regardless of which
// orientation the bin was actually cut under.
func ReadJSON(r io.Reader) (*solution.Solution, error) {
	var doc solutionDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	sol := &solution.Solution{
		BinsUsed:    doc.BinsUsed,
		ItemsPlaced: doc.ItemsPlaced,
		Profit:      doc.Profit,
		Waste:       doc.Waste,
		Full:        doc.Full,
		Items:       make([]solution.PlacedItem, 0, len(doc.Items)),
	}
	if sol.BinsUsed > 0 {
		sol.BinOrientations = make([]instance.Orientation, sol.BinsUsed)
	}
	for _, it := range doc.Items {
		sol.Items = append(sol.Items, solution.PlacedItem{
			ItemId: it.ItemId, Bin: it.Bin,
			OX: it.X, OY: it.Y, OW: it.Width, OH: it.Height,
			Rotated: it.Rotated, Orientation: instance.Vertical,
		})
	}
	return sol, nil
}

// WriteCSV writes sol as a flat CSV table with the same columns as
// WriteJSON's item rows, header first.
func WriteCSV(w io.Writer, sol *solution.Solution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"bin", "item_id", "x", "y", "width", "height", "rotated"}); err != nil {
		return err
	}
	for _, p := range sol.Items {
		r := p.PhysicalRect()
		row := []string{
			strconv.FormatInt(int64(p.Bin), 10),
			strconv.FormatInt(int64(p.ItemId), 10),
			strconv.FormatInt(r.X, 10),
			strconv.FormatInt(r.Y, 10),
			strconv.FormatInt(r.W, 10),
			strconv.FormatInt(r.H, 10),
			strconv.FormatBool(p.Rotated),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
