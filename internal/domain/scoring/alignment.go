package scoring

import (
	"fmt"
	"math"

	"github.com/designqa/designqa/internal/domain"
)

// checkAlignment clusters positioned elements into rows by vertical overlap
// (transitively), then flags row members whose x strays from the row's
// reference x by more than the tolerance. Single-element rows and elements
// without a finite position are not evaluated.
func checkAlignment(elements []domain.DesignElement, rules domain.Rules) checkResult {
	var res checkResult
	var positioned []domain.DesignElement
	for _, e := range elements {
		if e.HasPosition() {
			positioned = append(positioned, e)
		}
	}

	for _, row := range groupRows(positioned) {
		if len(row) < 2 {
			continue
		}
		ref := referenceX(row, rules.AlignmentTolerance)
		for _, e := range row {
			res.evaluated++
			diff := math.Abs(e.Position.X - ref)
			if diff <= rules.AlignmentTolerance {
				continue
			}
			res.add(domain.Issue{
				ID:       "alignment-" + e.ID,
				Category: domain.CategoryAlignment,
				Severity: domain.SeverityMedium,
				Title:    "Misaligned relative to row",
				Description: fmt.Sprintf("x=%s is %s units off the row's common x=%s (tolerance %s)",
					formatNumber(e.Position.X), formatNumber(round2(diff)), formatNumber(ref), formatNumber(rules.AlignmentTolerance)),
				Suggestion:  "Snap the element to the shared guide used by the rest of the row",
				ElementID:   e.ID,
				Coordinates: boundsOf(e),
			})
		}
	}
	return res
}

// groupRows partitions elements into rows using union-find over vertical
// extents. Rows and their members keep input order.
func groupRows(elements []domain.DesignElement) [][]domain.DesignElement {
	parent := make([]int, len(elements))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		if ra, rb := find(a), find(b); ra != rb {
			parent[rb] = ra
		}
	}

	for i := 0; i < len(elements); i++ {
		bi := elements[i].Bounds()
		for j := i + 1; j < len(elements); j++ {
			bj := elements[j].Bounds()
			if bi.Y <= bj.Bottom() && bj.Y <= bi.Bottom() {
				union(i, j)
			}
		}
	}

	index := make(map[int]int)
	var rows [][]domain.DesignElement
	for i, e := range elements {
		root := find(i)
		pos, ok := index[root]
		if !ok {
			pos = len(rows)
			index[root] = pos
			rows = append(rows, nil)
		}
		rows[pos] = append(rows[pos], e)
	}
	return rows
}

// referenceX is the row's most common x: the member x that the most members
// sit within tolerance of. Ties go to the earliest member.
func referenceX(row []domain.DesignElement, tolerance float64) float64 {
	best, bestCount := row[0].Position.X, -1
	for _, candidate := range row {
		count := 0
		for _, other := range row {
			if math.Abs(other.Position.X-candidate.Position.X) <= tolerance {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = candidate.Position.X, count
		}
	}
	return best
}
