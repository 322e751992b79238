// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Stage is the predicate function for stage builders.
type Stage func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
