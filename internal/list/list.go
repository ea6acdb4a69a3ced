// Package list holds the pure transition functions for a todo collection.
// Every function returns a fresh slice; inputs are never mutated and
// persistence is the caller's business.
package list

import "github.com/lucvt/tick/internal/model"

// NextID returns max(existing ids)+1, or 1 for an empty collection.
// Length-based ids collide after removals; max-id does not.
func NextID(items []model.Item) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// Add appends a new pending item with a fresh id.
func Add(items []model.Item, text string) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, model.Item{ID: NextID(items), Text: text})
	return out
}

// Toggle flips the done flag of the item with the given id.
// An unknown id is a no-op; the result is still a fresh slice.
func Toggle(items []model.Item, id int) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Done = !out[i].Done
			break
		}
	}
	return out
}

// Remove drops the item with the given id, keeping the order of the rest.
// An unknown id is a no-op.
func Remove(items []model.Item, id int) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Stats counts done and pending items for list headers.
func Stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
