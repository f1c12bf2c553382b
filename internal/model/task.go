// Package model holds the task types shared by storage and the task list.
package model

// Task is a single to-do item. Its position in the list is its only address.
type Task struct {
	Description string `json:"description"`
}

// Document is the persisted shape of a task list.
type Document struct {
	Tasks []Task `json:"tasks"`
}
