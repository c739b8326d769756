package ecs

// Renderer is implemented by systems that also draw onto a screen of type S.
type Renderer[S any] interface {
	Draw(w *World, screen S)
}

// Draw calls every system that renders to S, in update order.
func Draw[S any](s *Scheduler, w *World, screen S) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		rs, ok := system.(Renderer[S])
		if !ok {
			continue
		}
		rs.Draw(w, screen)
	}
}
