package model

import (
	"github.com/gorustyt/gonavpath/common"
)

// NavTopography maps a straight move on a non planar polygon into a sequence
// of points following the ground. The returned sequence starts with start and
// ends with end.
type NavTopography interface {
	FollowTopography(start, end common.Vec3) []common.Vec3
}
