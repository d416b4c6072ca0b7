// Package rendermodel resolves a tracked device's render geometry against the
// native runtime's asynchronous asset cache. Loads complete across frames; the
// resolver polls and reports a pending status until every part of a model is
// ready, so callers never see a partially loaded model.
package rendermodel

import (
	"github.com/go-gl/mathgl/mgl32"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
)

// Resolver answers capability and model-load queries for device slots.
type Resolver struct {
	system runtime.System
	models runtime.RenderModels
}

// New builds a resolver over the runtime's property and asset subsystems.
func New(system runtime.System, models runtime.RenderModels) *Resolver {
	return &Resolver{system: system, models: models}
}

// Capabilities recomputes the slot's capabilities from its current device
// properties. A device exposing a render-model name reports at least one
// component, so a monolithic model still counts as renderable.
func (r *Resolver) Capabilities(slot uint32) types.TrackerCapabilities {
	caps := types.TrackerCapabilities{
		IsCamera: r.system.DeviceClass(slot) == runtime.DeviceClassHMD,
	}
	if name, ok := r.system.RenderModelName(slot); ok {
		n := r.models.ComponentCount(name)
		if n < 1 {
			n = 1
		}
		caps.RenderModelComponents = n
	}
	return caps
}

type partState uint8

const (
	partReady partState = iota
	partPending
	partFailed
)

// Status polls the slot's render-model load. A device without a render-model
// name property has no model at all: that is terminal unavailable, not
// pending. Multi-component models aggregate all-or-nothing: one in-flight part
// keeps the whole status pending and any hard failure makes it unavailable.
func (r *Resolver) Status(slot uint32) types.ModelStatus {
	name, ok := r.system.RenderModelName(slot)
	if !ok {
		return types.UnavailableStatus()
	}

	count := r.models.ComponentCount(name)
	if count == 0 {
		part, state := r.loadPart(name, "")
		switch state {
		case partPending:
			return types.PendingStatus()
		case partFailed:
			return types.UnavailableStatus()
		}
		// a whole-device model is not a "component"
		part.Name = ""
		return types.AvailableStatus([]types.ComponentModel{part})
	}

	parts := make([]types.ComponentModel, 0, count)
	pending := false
	for i := uint32(0); i < count; i++ {
		component, ok := r.models.ComponentName(name, i)
		if !ok {
			// enumeration shifted under us; retry the whole call next frame
			pending = true
			continue
		}
		part, state := r.loadPart(name, component)
		switch state {
		case partFailed:
			return types.UnavailableStatus()
		case partPending:
			pending = true
		default:
			parts = append(parts, part)
		}
	}
	if pending {
		return types.PendingStatus()
	}
	return types.AvailableStatus(parts)
}

// loadPart requests one part's geometry and, when referenced, its diffuse
// texture. Geometry without its intended texture is not published: the part
// stays pending until the texture is resident. A model with no diffuse texture
// publishes geometry-only.
func (r *Resolver) loadPart(model, component string) (types.ComponentModel, partState) {
	var (
		rm  *runtime.RenderModel
		err error
	)
	if component == "" {
		rm, err = r.models.LoadRenderModel(model)
	} else {
		rm, err = r.models.LoadComponentModel(model, component)
	}
	if err != nil {
		return types.ComponentModel{}, partFailed
	}
	if rm == nil {
		return types.ComponentModel{}, partPending
	}

	part := types.ComponentModel{
		Name:     component,
		Vertices: convertVertices(rm.Vertices),
		Indices:  append([]uint16(nil), rm.Indices...),
	}
	if rm.DiffuseTextureID >= 0 {
		tex, err := r.models.LoadTexture(rm.DiffuseTextureID)
		if err != nil || tex == nil {
			return types.ComponentModel{}, partPending
		}
		part.Texture = &types.TextureData{
			Data:   append([]byte(nil), tex.Data...),
			Width:  tex.Width,
			Height: tex.Height,
		}
	}
	return part, partReady
}

var up = mgl32.Vec3{0, 1, 0}

// convertVertices maps raw vertices to the engine layout. The source format
// carries no tangent, so one is synthesized as (n × up) × n, which is
// orthogonal to the normal by construction. V is flipped to the target image
// coordinate convention.
func convertVertices(src []runtime.RawVertex) []types.Vertex {
	out := make([]types.Vertex, len(src))
	for i, v := range src {
		normal := mgl32.Vec3{v.Normal[0], v.Normal[1], v.Normal[2]}
		out[i] = types.Vertex{
			Position: mgl32.Vec3{v.Position[0], v.Position[1], v.Position[2]},
			Normal:   normal,
			Tangent:  normal.Cross(up).Cross(normal),
			TexCoord: mgl32.Vec2{v.TexCoord[0], 1 - v.TexCoord[1]},
		}
	}
	return out
}
