package store

import "github.com/jonathan/job-autopilot/internal/types"

// reducePresets handles the PRESETS_ namespace.
func reducePresets(state PresetsState, action Action) PresetsState {
	switch a := action.(type) {
	case PresetsAdd:
		state.Presets = appendCopy(state.Presets, a.Preset)
		return state

	case PresetsUpdate:
		state.Presets = mapCopy(state.Presets, func(p types.Preset) types.Preset {
			if p.ID == a.ID {
				return a.Patch.Apply(p)
			}
			return p
		})
		return state

	case PresetsDelete:
		state.Presets = filterCopy(state.Presets, func(p types.Preset) bool { return p.ID != a.ID })
		return state

	case PresetsIncrementUsage:
		state.Presets = mapCopy(state.Presets, func(p types.Preset) types.Preset {
			if p.ID == a.ID {
				p.UsageCount++
				at := a.At
				p.LastUsed = &at
			}
			return p
		})
		return state
	}
	return state
}
