// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ResultRecord is the predicate function for resultrecord builders.
type ResultRecord func(*sql.Selector)

// SessionSnapshot is the predicate function for sessionsnapshot builders.
type SessionSnapshot func(*sql.Selector)
