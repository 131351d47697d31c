package tint

import "github.com/arthur-debert/termtint/pkg/sgr"

// Context tracks the stack of active style codes for one execution context.
// The stack is seeded with the sentinel default and is never empty, so
// there is always an enclosing style to restore when a styled region ends.
//
// A Context is not safe for concurrent use. Give each goroutine its own
// Context via New; they never need to share one.
type Context struct {
	stack []sgr.Code
}

// New returns a Context with only the sentinel default style active.
func New() *Context {
	return &Context{stack: []sgr.Code{sgr.Default}}
}

func (c *Context) push(code sgr.Code) {
	if len(c.stack) == 0 {
		// Lazily seed the sentinel so a zero-value Context works too.
		c.stack = append(c.stack, sgr.Default)
	}
	c.stack = append(c.stack, code)
}

// pop removes the top entry. The sentinel seeded by New is never removed:
// popping with only the sentinel left is a no-op, which keeps Current
// well-defined even for unbalanced callers.
func (c *Context) pop() {
	if len(c.stack) <= 1 {
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// Current returns the style code at the top of the stack: the code that is
// active in the enclosing region right now.
func (c *Context) Current() sgr.Code {
	if len(c.stack) == 0 {
		// Unreachable given the sentinel invariant, but a zero-value
		// Context should still behave.
		return sgr.Default
	}
	return c.stack[len(c.stack)-1]
}

// depth reports the stack size, sentinel included.
func (c *Context) depth() int {
	return len(c.stack)
}
