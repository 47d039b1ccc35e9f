// Package spiro provides the trail/vertex engine for rolling-circle curves.
//
// The package is split into three cooperating parts:
//
//   - [Curve]: advances the rolling-circle angles and computes the next
//     pen position in display space (epicycloid or hypocycloid)
//   - [Trail]: fixed-capacity ring of vertex records (x, y, r, g, b) whose
//     colours are retagged by age on every push
//   - [ColorMode]: colour model binding a colour to every age slot,
//     either [StaticColor] or a multi-stop [Gradient]
//
// [Spirograph] composes a Curve and a Trail and is what renderers talk to.
//
// # Example
//
//	s, _ := spiro.New(spiro.DefaultConfig())
//	s.Start()
//	for i := 0; i < 100; i++ {
//	    s.Tick()
//	}
//	verts, count := s.Snapshot()
//
// # Vertex Layout
//
// Snapshot returns records of [VertexSize] float32 values: two position
// components followed by three colour components. The slice can be uploaded
// to a vertex buffer as-is with a stride of VertexSize*4 bytes.
//
// # Thread Safety
//
// Curve, Trail and Spirograph are NOT thread-safe. Each renderer owns its own
// instance and drives it from a single goroutine.
package spiro
