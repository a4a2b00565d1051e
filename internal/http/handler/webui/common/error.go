package common

import (
	"net/http"

	"github.com/bornholm/maven/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

// Error is an error which carries what the visitor should see on the
// error page, independently of the wrapped cause.
type Error struct {
	cause       error
	userMessage string
	statusCode  int
	links       []component.LinkItem
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) StatusCode() int {
	return e.statusCode
}

func (e *Error) UserMessage() string {
	return e.userMessage
}

func (e *Error) Links() []component.LinkItem {
	return e.links
}

// WithLinks returns a copy of the error offering the given links to the
// visitor.
func (e *Error) WithLinks(links ...component.LinkItem) *Error {
	clone := *e
	clone.links = append(append([]component.LinkItem{}, e.links...), links...)
	return &clone
}

func NewError(cause error, userMessage string, statusCode int) *Error {
	if cause == nil {
		cause = errors.New(http.StatusText(statusCode))
	}

	return &Error{
		cause:       cause,
		userMessage: userMessage,
		statusCode:  statusCode,
	}
}

func NewHTTPError(statusCode int) *Error {
	return NewError(nil, http.StatusText(statusCode), statusCode)
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
	_ WithErrorLinks  = &Error{}
)
