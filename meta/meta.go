// meta/meta.go
package meta

// MAX_STEPS is the number of steps after which the hider wins a match.
const MAX_STEPS = 200

// REPLAN_INTERVAL is how often (in steps) the hider picks a new target.
const REPLAN_INTERVAL = 10

// GAMES is the number of matches played per experiment run.
const GAMES = 10

// WALL_DENSITY is the probability of a wall in a generated layout.
const WALL_DENSITY = 0.2

// GRID_SIZE is the side of a generated square layout.
const GRID_SIZE = 15

// MAX_STEPS_LIMIT caps the configurable step limit of a match.
const MAX_STEPS_LIMIT = 10000
