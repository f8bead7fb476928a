package solution

import (
	"fmt"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solverrors"
)

// Check validates a converted Solution against the instance it should
// have been built from: every placed item fits inside its bin, no two
// placements overlap, no placement overlaps a defect, and no item type
// is placed more times than it has copies. Grounded on the
// overlap/defect scenarios exercised by
// rectangleguillotine/tests/defect_test.cpp, generalized from
// "does node.children() propose the right insertion" into "does the
// final placement list hold up".
func Check(inst *instance.Instance, sol *Solution) error {
	copiesUsed := make(map[instance.ItemTypeId]int32)

	for idx, p := range sol.Items {
		if int(p.Bin) >= sol.BinsUsed {
			return solverrors.NewInvariantError(fmt.Sprintf("item %d placed in bin %d, but only %d bins are used", p.ItemId, p.Bin, sol.BinsUsed))
		}
		bin := inst.Bin(p.Bin)
		o := sol.BinOrientations[p.Bin]

		if p.OX < 0 || p.OY < 0 || p.OX+p.OW > bin.Width(o) || p.OY+p.OH > bin.Height(o) {
			return solverrors.NewInvariantError(fmt.Sprintf("item %d placement (%d,%d,%d,%d) escapes bin %d", p.ItemId, p.OX, p.OY, p.OW, p.OH, p.Bin))
		}

		it := inst.Item(p.ItemId)
		if p.Rotated && it.Oriented {
			return solverrors.NewInvariantError(fmt.Sprintf("item %d is oriented but was placed rotated", p.ItemId))
		}
		copiesUsed[p.ItemId]++
		if copiesUsed[p.ItemId] > it.Copies {
			return solverrors.NewInvariantError(fmt.Sprintf("item %d placed %d times, exceeding its %d copies", p.ItemId, copiesUsed[p.ItemId], it.Copies))
		}

		for _, d := range bin.Defects {
			if d.Bin != p.Bin {
				continue
			}
			l, b := orientedDefectOrigin(d, o)
			dw, dh := orientedDefectExtent(d, o)
			if rectsOverlap(p.OX, p.OY, p.OW, p.OH, l, b, dw, dh) {
				return solverrors.NewInvariantError(fmt.Sprintf("item %d at bin %d overlaps defect %d", p.ItemId, p.Bin, d.Id))
			}
		}

		for _, q := range sol.Items[idx+1:] {
			if q.Bin != p.Bin {
				continue
			}
			if rectsOverlap(p.OX, p.OY, p.OW, p.OH, q.OX, q.OY, q.OW, q.OH) {
				return solverrors.NewInvariantError(fmt.Sprintf("items %d and %d overlap in bin %d", p.ItemId, q.ItemId, p.Bin))
			}
		}
	}

	return nil
}

func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 instance.Length) bool {
	return x1 < x2+w2 && x2 < x1+w1 && y1 < y2+h2 && y2 < y1+h1
}

func orientedDefectOrigin(d instance.Defect, o instance.Orientation) (instance.Length, instance.Length) {
	if o == instance.Vertical {
		return d.Rect.X, d.Rect.Y
	}
	return d.Rect.Y, d.Rect.X
}

func orientedDefectExtent(d instance.Defect, o instance.Orientation) (instance.Length, instance.Length) {
	if o == instance.Vertical {
		return d.Rect.W, d.Rect.H
	}
	return d.Rect.H, d.Rect.W
}
