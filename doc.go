// Package navmap models a 2D navigation map of axis-aligned rectangular
// obstacles and validates candidate start and goal points against it.
//
// An ObstacleMap is built once from a Config and is read-only afterwards;
// Validate is a pure function deciding whether a point is usable, returning
// a Result value rather than an error so the caller owns the policy on
// rejection. There is no pathfinding here: the package exists to guarantee
// a map and its endpoints are well-formed before rendering or later
// algorithm work.
package navmap
