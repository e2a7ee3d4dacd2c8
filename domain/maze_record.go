package domain

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
)

// MazeRecord is an accepted maze together with the overlays and solver
// stats computed at generation time. Once stored it is read-only; feature
// overlays are never regenerated unless the whole maze regenerates.
type MazeRecord struct {
	ID         uuid.UUID          `bson:"_id" json:"id"`
	OwnerID    uuid.UUID          `bson:"ownerId" json:"ownerId"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
	Grid       *maze.Grid         `bson:"grid" json:"grid"`
	Start      maze.CellPosition  `bson:"start" json:"start"`
	Goal       maze.CellPosition  `bson:"goal" json:"goal"`
	Holes      []maze.Hole        `bson:"holes,omitempty" json:"holes,omitempty"`
	Portals    *maze.PortalPair   `bson:"portals,omitempty" json:"portals,omitempty"`
	Wildcard   *maze.CellPosition `bson:"wildcard,omitempty" json:"wildcard,omitempty"`
	Stats      maze.Stats         `bson:"stats" json:"stats"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
