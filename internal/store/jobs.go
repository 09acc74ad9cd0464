package store

import "github.com/jonathan/job-autopilot/internal/types"

// reduceJobs handles the JOBS_ namespace. Updates are replace-by-identifier
// with partial merges; collections are copied, never mutated in place.
func reduceJobs(state JobsState, action Action) JobsState {
	switch a := action.(type) {
	case JobsFetchStart:
		state.Loading = true
		state.Error = ""
		return state

	case JobsFetchSuccess:
		state.Loading = false
		state.Jobs = append([]types.Job(nil), a.Jobs...)
		at := a.At
		state.LastFetched = &at
		return state

	case JobsFetchError:
		state.Loading = false
		state.Error = a.Message
		return state

	case JobsAdd:
		state.Jobs = appendCopy(state.Jobs, a.Job)
		return state

	case JobsUpdate:
		state.Jobs = mapCopy(state.Jobs, func(j types.Job) types.Job {
			if j.ID == a.ID {
				return a.Patch.Apply(j)
			}
			return j
		})
		return state

	case JobsDelete:
		state.Jobs = filterCopy(state.Jobs, func(j types.Job) bool { return j.ID != a.ID })
		return state

	case JobsSetFilter:
		state.Filter = mergeFilter(state.Filter, a.Filter)
		return state

	case JobsClearFilter:
		state.Filter = types.Filter{}
		return state
	}
	return state
}

// mergeFilter overlays the non-zero fields of patch onto base.
func mergeFilter(base, patch types.Filter) types.Filter {
	if patch.Search != "" {
		base.Search = patch.Search
	}
	if patch.Locations != nil {
		base.Locations = patch.Locations
	}
	if patch.Skills != nil {
		base.Skills = patch.Skills
	}
	if patch.Companies != nil {
		base.Companies = patch.Companies
	}
	if patch.Statuses != nil {
		base.Statuses = patch.Statuses
	}
	if patch.MatchScoreMin != 0 {
		base.MatchScoreMin = patch.MatchScoreMin
	}
	return base
}

func appendCopy[T any](in []T, v T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, in...)
	return append(out, v)
}

func mapCopy[T any](in []T, fn func(T) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func filterCopy[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
