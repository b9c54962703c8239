package priority

import "github.com/strategize/pathway/pkg/models"

// Per-quadrant guidance is a fixed lookup, not computed.

var recommendations = map[models.Quadrant]string{
	models.QuadrantQuickWins:     "High impact for low effort. Schedule these first to build momentum and demonstrate early value.",
	models.QuadrantMajorProjects: "High impact but significant investment. Break into smaller milestones and secure resourcing before committing.",
	models.QuadrantFillIns:       "Low cost but limited payoff. Slot these into spare capacity; never let them displace higher-impact work.",
	models.QuadrantTimeWasters:   "High effort for little return. Deprioritize or drop unless the impact assessment changes materially.",
}

var riskFactors = map[models.Quadrant][]string{
	models.QuadrantQuickWins: {
		"Underestimating hidden complexity behind a seemingly easy win",
		"Accumulating many small wins while deferring structural work",
	},
	models.QuadrantMajorProjects: {
		"Scope creep extending the timeline beyond the impact window",
		"Resource contention with day-to-day operations",
		"Impact assumptions going stale before delivery",
	},
	models.QuadrantFillIns: {
		"Low-value work crowding out strategic initiatives",
		"Maintenance burden accumulating from many minor additions",
	},
	models.QuadrantTimeWasters: {
		"Sunk-cost pressure to continue after effort is invested",
		"Opportunity cost of blocked capacity",
	},
}

var nextSteps = map[models.Quadrant][]string{
	models.QuadrantQuickWins: {
		"Assign an owner and a completion date within the current cycle",
		"Verify the effort estimate with whoever will do the work",
		"Define the success signal before starting",
	},
	models.QuadrantMajorProjects: {
		"Write a one-page brief covering scope, milestones, and staffing",
		"Identify the riskiest assumption and test it cheaply first",
		"Set a go/no-go checkpoint at the first milestone",
	},
	models.QuadrantFillIns: {
		"Park in the backlog with a low-priority label",
		"Batch similar fill-ins to reduce context switching",
	},
	models.QuadrantTimeWasters: {
		"Document why the item was rejected for future reference",
		"Revisit only if the impact or effort estimate changes",
	},
}
