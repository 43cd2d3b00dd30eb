package migration

// LegacyGame is the document shape of the old MongoDB catalog. Field
// names follow the original collection, not the current wire format.
type LegacyGame struct {
	ID       int64    `bson:"_id"`
	Title    string   `bson:"title"`
	File     string   `bson:"file"`
	Genre    string   `bson:"genre"`
	Summary  string   `bson:"summary"`
	Stars    int      `bson:"stars"`
	Released int      `bson:"released"`
	Featured bool     `bson:"featured"`
	Region   string   `bson:"region"`
	Boxart   string   `bson:"boxart"`
	Snaps    []string `bson:"snaps"`
}

// MigrationStats tracks what a run did.
type MigrationStats struct {
	Read      int
	Converted int
	Skipped   int
}
