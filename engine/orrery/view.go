package orrery

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/Carmen-Shannon/oxy-orrery/engine/score"
)

// BodyView is a copy of one body's render state.
type BodyView struct {
	Name string
	// Center is the world-space center.
	Center common.Vec3
	// DisplayRadius includes the selection highlight scale.
	DisplayRadius float32
	Color         [3]float32
	Selected      bool
	Moons         []BodyView
}

// ObstacleView is a copy of one obstacle's render state.
type ObstacleView struct {
	Kind     obstacle.Kind
	Position common.Vec3
	Radius   float32
}

// View is a self-contained snapshot of one frame, safe to hand to a renderer goroutine.
type View struct {
	Mode           string
	Eye            common.Vec3
	Target         common.Vec3
	ViewProjection [16]float32
	// Fov is the vertical field of view in radians; Aspect, Near and Far complete the lens.
	Fov       float32
	Aspect    float32
	Near      float32
	Far       float32
	SunRadius float32
	Bodies    []BodyView
	Belt      []common.Vec3
	BeltSizes []float32
	Obstacles []ObstacleView
	Score     score.Snapshot
	Clock     float32
}

func (s *simulationImpl) View() View {
	s.mu.Lock()
	defer s.unlock()

	ex, ey, ez := s.controller.Position()
	tx, ty, tz := s.controller.Target()
	v := View{
		Mode:           s.controller.Mode().String(),
		Eye:            common.Vec3{ex, ey, ez},
		Target:         common.Vec3{tx, ty, tz},
		ViewProjection: s.camera.ViewProjectionMatrix(),
		Fov:            s.camera.Fov(),
		Aspect:         s.camera.Aspect(),
		Near:           s.camera.Near(),
		Far:            s.camera.Far(),
		SunRadius:      s.registry.SunRadius(),
		Score:          s.game.Snapshot(),
		Clock:          s.clock,
	}

	for _, b := range s.registry.Bodies() {
		bv := BodyView{
			Name:          b.Name,
			Center:        b.Center(),
			DisplayRadius: s.registry.DisplayScale(b, s.selected),
			Color:         b.Color,
			Selected:      b == s.selected,
		}
		for _, m := range b.Moons {
			bv.Moons = append(bv.Moons, BodyView{
				Name:          m.Name,
				Center:        m.Center(),
				DisplayRadius: m.Radius,
				Color:         m.Color,
			})
		}
		v.Bodies = append(v.Bodies, bv)
	}

	belt := s.registry.Belt()
	v.Belt = make([]common.Vec3, len(belt))
	v.BeltSizes = make([]float32, len(belt))
	for i, a := range belt {
		v.Belt[i] = a.Position()
		v.BeltSizes[i] = a.Size
	}

	for _, o := range s.field.All() {
		v.Obstacles = append(v.Obstacles, ObstacleView{Kind: o.Kind, Position: o.Position, Radius: o.CollisionRadius})
	}
	return v
}
