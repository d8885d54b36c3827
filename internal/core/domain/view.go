package domain

import "fmt"

// View is the projection of a task set under a filter.
type View struct {
	Filter Filter
	// Visible holds the tasks matching Filter, in the order they were given.
	Visible []Task
	// ActiveCount counts incomplete tasks in the full set, regardless of Filter.
	ActiveCount int
}

// Project derives the visible subset and the active count.
// It does not modify tasks.
func Project(tasks []Task, filter Filter) View {
	v := View{
		Filter:  filter,
		Visible: make([]Task, 0, len(tasks)),
	}
	for _, t := range tasks {
		if filter.Includes(t) {
			v.Visible = append(v.Visible, t)
		}
		if !t.Completed {
			v.ActiveCount++
		}
	}
	return v
}

// ItemsLeft returns the footer label for the view.
func (v View) ItemsLeft() string {
	return fmt.Sprintf("%d active item(s) left", v.ActiveCount)
}
