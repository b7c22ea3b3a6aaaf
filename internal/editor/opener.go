package editor

import (
	"github.com/dshills/edithost/internal/resource"
)

// Delegate is an optional host callback invoked exactly once when a
// resource does not resolve to any reachable surface. Its boolean result
// is not inspected by this layer.
type Delegate func(resourceString string) bool

// FindModel returns the surface's loaded model if its resource's string
// form exactly equals the requested resource's string form. No partial or
// fuzzy matching.
func FindModel(s Surface, res resource.Resource) (*Model, bool) {
	if s == nil {
		return nil, false
	}
	m := s.Model()
	if m == nil {
		return nil, false
	}
	if m.Resource().String() != res.String() {
		return nil, false
	}
	return m, true
}

// found pairs a matched surface with its model during resolution.
type found struct {
	surface Surface
	model   *Model
}

// Opener resolves requested resources against a logical editor handle and
// applies navigation to the matching surface.
type Opener struct {
	handle   Handle
	external ExternalOpener
}

// NewOpener creates an opener for the given handle.
// If external is nil, web resources open with the default browser opener.
func NewOpener(h Handle, external ExternalOpener) *Opener {
	if external == nil {
		external = DefaultExternalOpener()
	}
	return &Opener{handle: h, external: external}
}

// Handle returns the logical editor handle the opener resolves against.
func (o *Opener) Handle() Handle {
	return o.handle
}

// locate finds the surface currently showing the resource. On a comparison
// handle the original surface is checked first and the modified one only
// if the original missed.
func (o *Opener) locate(res resource.Resource) *found {
	return Dispatch(o.handle,
		func(h SingleHandle) *found {
			if m, ok := FindModel(h.Surface, res); ok {
				return &found{surface: h.Surface, model: m}
			}
			return nil
		},
		func(h CompareHandle) *found {
			if m, ok := FindModel(h.Original, res); ok {
				return &found{surface: h.Original, model: m}
			}
			if m, ok := FindModel(h.Modified, res); ok {
				return &found{surface: h.Modified, model: m}
			}
			return nil
		},
	)
}

// OpenEditor resolves a requested resource and applies the optional
// navigation target to the matching surface.
//
// On a miss: a supplied delegate is invoked exactly once with the
// resource's string form and the result is absent; otherwise a web
// resource triggers a fire-and-forget external open and the current handle
// is returned as a signal that something was done; anything else is
// absent. On a hit the handle is returned, never the model.
func (o *Opener) OpenEditor(res resource.Resource, target *Target, delegate Delegate) (Handle, bool) {
	hit := o.locate(res)
	if hit == nil {
		if delegate != nil {
			delegate(res.String())
			return nil, false
		}
		if res.IsWeb() {
			o.external.OpenExternal(res.String())
			return o.handle, true
		}
		return nil, false
	}

	if target != nil {
		target.apply(hit.surface)
	}
	return o.handle, true
}

// ResolveModel resolves a requested resource to a read-only model wrapper.
// Matching is identical to OpenEditor's but no navigation is applied.
func (o *Opener) ResolveModel(res resource.Resource) (Reader, bool) {
	hit := o.locate(res)
	if hit == nil {
		return Reader{}, false
	}
	return NewReader(hit.model), true
}
