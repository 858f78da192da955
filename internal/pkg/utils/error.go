package utils

import (
	"fmt"
	"strings"
)

// Error aggregates multiple errors into one message, one error per line.
type Error struct {
	prefix string
	errors []string
}

func NewError() *Error {
	return &Error{}
}

func WrapError(prefix string, err error) *Error {
	e := &Error{}
	e.SetPrefix(prefix + ":")
	e.Add(err)
	return e
}

func (e *Error) Len() int {
	return len(e.errors)
}

func (e *Error) SetPrefix(prefix string) {
	e.prefix = prefix
}

func (e *Error) Add(err error) {
	if v, ok := err.(*Error); ok {
		for _, item := range v.Errors() {
			e.doAdd(item)
		}
	} else {
		e.doAdd(err.Error())
	}
}

func (e *Error) AddRaw(err string) {
	e.errors = append(e.errors, err)
}

func (e *Error) Errors() []string {
	return e.errors
}

// ErrorOrNil returns nil if no error was added.
func (e *Error) ErrorOrNil() error {
	if e == nil || len(e.errors) == 0 {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	msg := strings.Join(e.errors, "\n")
	if e.prefix != "" {
		return e.prefix + "\n" + msg
	}
	return msg
}

func (e *Error) doAdd(err string) {
	err = strings.TrimLeft(err, "- ")
	e.errors = append(e.errors, fmt.Sprintf("- %s", err))
}
