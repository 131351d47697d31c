package tint

import (
	"fmt"

	"github.com/arthur-debert/termtint/pkg/sgr"
)

// Apply renders the output of render wrapped in code, nesting correctly
// with any styling performed by render itself.
//
// The code is pushed onto the context stack before render runs and popped
// after it returns, so nested Apply calls made inside render see this code
// as their enclosing style. The result is code, the rendered body, a reset,
// and then whatever style is active in the enclosing region, so terminal
// output visually resumes the enclosing style. Each region is therefore
// self-terminating: truncating the output after a region never leaks its
// style into what follows.
//
// The pop is guaranteed even if render panics, so a failed render cannot
// corrupt sibling calls on the same Context.
func (c *Context) Apply(code sgr.Code, render func() string) string {
	c.push(code)
	body := func() string {
		defer c.pop()
		return render()
	}()
	return string(code) + body + string(sgr.Reset) + string(c.Current())
}

// Applyf is Apply with fmt.Sprintf rendering.
//
// Arguments are evaluated before the code is pushed, innermost first, as
// with any Go call. Styled arguments built on the same Context therefore
// close with the style that enclosed *their* call site. To have an inner
// region restore this code instead, build it inside an Apply closure.
func (c *Context) Applyf(code sgr.Code, format string, args ...any) string {
	return c.Apply(code, func() string {
		return fmt.Sprintf(format, args...)
	})
}
