package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadItemsParsesRowsAndSkipsHeader(t *testing.T) {
	csvText := "id,stack,pos,width,height,profit,copies,oriented\n" +
		"0,0,0,500,1000,500000,1,false\n" +
		"1,1,0,1000,1000,1000000,2,true\n"

	items, err := LoadItems(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, instance.Item{Id: 0, Stack: 0, Pos: 0, W: 500, H: 1000, Profit: 500000, Copies: 1, Oriented: false}, items[0])
	assert.Equal(t, instance.Item{Id: 1, Stack: 1, Pos: 0, W: 1000, H: 1000, Profit: 1000000, Copies: 2, Oriented: true}, items[1])
}

func TestLoadItemsWithoutHeaderStillParses(t *testing.T) {
	csvText := "0,0,0,500,1000,500000,1,false\n"
	items, err := LoadItems(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestLoadItemsRejectsMalformedRow(t *testing.T) {
	csvText := "id,stack,pos,width,height,profit,copies,oriented\n" +
		"not-a-number,0,0,500,1000,500000,1,false\n"
	_, err := LoadItems(strings.NewReader(csvText))
	assert.Error(t, err)
}

func TestLoadBinsAndDefects(t *testing.T) {
	bins, err := LoadBins(strings.NewReader("width,height,copies\n6000,3210,1\n"))
	require.NoError(t, err)
	require.Len(t, bins, 1)

	err = LoadDefects(strings.NewReader("id,bin,x,y,width,height\n0,0,2000,1500,2,2\n"), bins)
	require.NoError(t, err)
	require.Len(t, bins[0].Defects, 1)
	assert.Equal(t, instance.Rect{X: 2000, Y: 1500, W: 2, H: 2}, bins[0].Defects[0].Rect)
}

func TestLoadDefectsRejectsOutOfRangeBin(t *testing.T) {
	bins := []instance.Bin{{W: 100, H: 100, Copies: 1}}
	err := LoadDefects(strings.NewReader("id,bin,x,y,width,height\n0,5,10,10,1,1\n"), bins)
	assert.Error(t, err)
}

func TestWriteJSONWritesPhysicalCoordinates(t *testing.T) {
	sol := &solution.Solution{
		BinsUsed: 1, ItemsPlaced: 1, Profit: 500000, Full: true,
		Items: []solution.PlacedItem{
			{ItemId: 0, Bin: 0, OX: 10, OY: 20, OW: 500, OH: 1000, Orientation: instance.Vertical},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sol))
	out := buf.String()
	assert.Contains(t, out, `"bins_used": 1`)
	assert.Contains(t, out, `"x": 10`)
	assert.Contains(t, out, `"width": 500`)
}

func TestWriteCSVWritesHeaderAndRows(t *testing.T) {
	sol := &solution.Solution{
		Items: []solution.PlacedItem{
			{ItemId: 0, Bin: 0, OX: 10, OY: 20, OW: 500, OH: 1000, Orientation: instance.Vertical, Rotated: true},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sol))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "bin,item_id,x,y,width,height,rotated", lines[0])
	assert.Equal(t, "0,0,10,20,500,1000,true", lines[1])
}
