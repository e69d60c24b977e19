// Package glhf is a thin layer over OpenGL 3.3 core. It hides the bind/restore bookkeeping of
// programs, vertex arrays and buffers, and exposes a small Device interface so that code which only
// needs to compile a program and upload a mesh can be exercised without a GL context.
package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init initializes the OpenGL function pointers and sets the blending mode used by all draws.
//
// It must be called on the thread that owns the GL context, after the context has been made current.
func Init() {
	err := gl.Init()
	if err != nil {
		panic(err)
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// binder binds a GL object and remembers what was bound before, so that restore can put the
// previous object back. Nested bind/restore pairs work like a stack.
type binder struct {
	restoreLoc uint32
	bindFunc   func(uint32)

	obj uint32

	prev []uint32
}

func (b *binder) bind() *binder {
	var prev int32
	gl.GetIntegerv(b.restoreLoc, &prev)
	b.prev = append(b.prev, uint32(prev))
	if b.prev[len(b.prev)-1] != b.obj {
		b.bindFunc(b.obj)
	}
	return b
}

func (b *binder) restore() *binder {
	if b.prev[len(b.prev)-1] != b.obj {
		b.bindFunc(b.prev[len(b.prev)-1])
	}
	b.prev = b.prev[:len(b.prev)-1]
	return b
}
