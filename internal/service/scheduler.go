package service

// BuildFetchOrder flattens the page counts of all tables into the sequence in
// which pages are fetched. Each element is a table id and stands for fetching
// that table's next unfetched page.
//
// Tables listed in parallel are interleaved: when the cursor reaches one of
// them it emits a single page and moves on, and after the last parallel table
// emits a page the cursor wraps to the front so the group progresses in lock
// step. Every other table emits all of its remaining pages in one burst.
// Interleaving only applies when parallel names more than one table.
func BuildFetchOrder(tableIDs []int, parallel []int, pages map[int]int) []int {
	remaining := make(map[int]int, len(tableIDs))
	total := 0
	for _, id := range tableIDs {
		remaining[id] = pages[id]
		total += pages[id]
	}

	interleave := len(parallel) > 1
	isParallel := make(map[int]bool, len(parallel))
	lastParallel := 0
	if interleave {
		for _, id := range parallel {
			isParallel[id] = true
		}
		lastParallel = parallel[len(parallel)-1]
	}

	order := make([]int, 0, total)
	cursor := 0
	for len(order) < total {
		if cursor >= len(tableIDs) {
			cursor = 0
		}
		id := tableIDs[cursor]
		if remaining[id] == 0 {
			cursor++
			continue
		}
		if isParallel[id] {
			order = append(order, id)
			remaining[id]--
			if id == lastParallel {
				cursor = 0
			} else {
				cursor++
			}
			continue
		}
		for ; remaining[id] > 0; remaining[id]-- {
			order = append(order, id)
		}
		cursor++
	}
	return order
}
