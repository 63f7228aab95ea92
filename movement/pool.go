package movement

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &stepContext{}
	},
}

func newCtx(i *Integrator, f Frame) *stepContext {
	ctx := ctxPool.Get().(*stepContext)
	ctx.integrator = i
	ctx.frame = f
	ctx.vel = f.Velocity
	return ctx
}

func putCtx(ctx *stepContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *stepContext) reset() {
	ctx.integrator = nil
	ctx.frame = Frame{}
	ctx.vel = mgl32.Vec3{}
	ctx.doPush = false
	ctx.out = Outcome{}
}
