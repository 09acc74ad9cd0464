package store

import "github.com/jonathan/job-autopilot/internal/types"

// reduceApplications handles the APPLICATIONS_ namespace.
func reduceApplications(state ApplicationsState, action Action) ApplicationsState {
	switch a := action.(type) {
	case ApplicationsAdd:
		state.Applications = appendCopy(state.Applications, a.Application)
		return state

	case ApplicationsUpdate:
		state.Applications = mapCopy(state.Applications, func(app types.Application) types.Application {
			if app.ID == a.ID {
				return a.Patch.Apply(app)
			}
			return app
		})
		return state

	case ApplicationsDelete:
		state.Applications = filterCopy(state.Applications, func(app types.Application) bool {
			return app.ID != a.ID
		})
		return state

	case ApplicationsAddLog:
		state.Applications = mapCopy(state.Applications, func(app types.Application) types.Application {
			if app.ID == a.ID {
				app.Logs = appendCopy(app.Logs, a.Entry)
			}
			return app
		})
		return state

	case ApplicationsUpdateStep:
		state.Applications = mapCopy(state.Applications, func(app types.Application) types.Application {
			if app.ID != a.ID {
				return app
			}
			app.Steps = mapCopy(app.Steps, func(step types.Step) types.Step {
				if step.Name == a.Stage {
					return a.Patch.Apply(step)
				}
				return step
			})
			return app
		})
		return state
	}
	return state
}
