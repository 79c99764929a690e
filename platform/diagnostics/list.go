package diagnostics

import "fmt"

// List is the concrete Result used by the engines. Messages keep the order in which
// they were added and duplicates are allowed.
type List struct {
	items []string
}

// NewList creates a List holding the provided messages in order.
func NewList(msgs ...string) *List {
	l := &List{items: make([]string, 0, len(msgs))}
	l.items = append(l.items, msgs...)
	return l
}

// FromError flattens err into a List. A nil error produces an empty List.
func FromError(err error) *List {
	l := NewList()
	l.AddError(err)
	return l
}

func (l *List) String() string {
	return fmt.Sprintf("diagnostics.List{Size: %d}", len(l.items))
}

// Add appends a message.
func (l *List) Add(msg string) {
	l.items = append(l.items, msg)
}

// Addf appends a formatted message.
func (l *List) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// AddError appends one message per leaf error. Errors that expose Unwrap() []error,
// such as the result of errors.Join, are expanded depth first. Callers that want a
// multi-%w error kept as one message should use Add(err.Error()) instead.
func (l *List) AddError(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			l.AddError(e)
		}
		return
	}
	l.Add(err.Error())
}

// Size returns the number of messages.
func (l *List) Size() int {
	return len(l.items)
}

// GetAtIndex returns the message at index i.
func (l *List) GetAtIndex(i int) string {
	return l.items[i]
}

// Empty reports whether the list holds no messages.
func (l *List) Empty() bool {
	return len(l.items) == 0
}

// Messages returns a copy of the messages.
func (l *List) Messages() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}
