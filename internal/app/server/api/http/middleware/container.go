package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects the middleware chain for one handler and hands it
// over exactly once, so each resource gets its own ordered stack.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

// GetAllAndClear returns the accumulated stack and resets the
// container for the next resource.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.middlewares
	c.middlewares = nil
	return mws
}
