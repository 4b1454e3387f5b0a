// Package matrix maps a screen's grid cell within a space to a pixel crop
// of a shared composition, and infers the grid size from sibling screens.
package matrix

import "github.com/lumacast/lumacast/internal/model"

// Crop is a rectangle within a composition canvas. Fields are float64 so
// the cells of a grid partition the canvas exactly even when the canvas
// size is not divisible by the grid dimensions; players round at render
// time.
type Crop struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dimensions is the inferred total size of a video-wall grid.
type Dimensions struct {
	TotalRows int `json:"total_rows"`
	TotalCols int `json:"total_cols"`
}

// CalculateCrop returns the cell rectangle for (row, col) in a grid of
// totalRows x totalCols over a compWidth x compHeight canvas. No bounds
// checking: out-of-range cells produce a rectangle outside the canvas
// rather than an error. Non-positive grid dimensions are treated as 1 to
// avoid a divide by zero on malformed input.
func CalculateCrop(compWidth, compHeight float64, row, col, totalRows, totalCols int) Crop {
	if totalRows < 1 {
		totalRows = 1
	}
	if totalCols < 1 {
		totalCols = 1
	}
	w := compWidth / float64(totalCols)
	h := compHeight / float64(totalRows)
	return Crop{
		X:      float64(col) * w,
		Y:      float64(row) * h,
		Width:  w,
		Height: h,
	}
}

// InferDimensions scans the screens' matrix coordinates and returns
// {maxRow+1, maxCol+1}. Screens without coordinates do not contribute; if
// none carry coordinates the grid is 1x1.
func InferDimensions(screens []model.Screen) Dimensions {
	maxRow, maxCol := 0, 0
	found := false
	for _, s := range screens {
		if !s.HasMatrixCoords() {
			continue
		}
		found = true
		if *s.MatrixRow > maxRow {
			maxRow = *s.MatrixRow
		}
		if *s.MatrixCol > maxCol {
			maxCol = *s.MatrixCol
		}
	}
	if !found {
		return Dimensions{TotalRows: 1, TotalCols: 1}
	}
	return Dimensions{TotalRows: maxRow + 1, TotalCols: maxCol + 1}
}
