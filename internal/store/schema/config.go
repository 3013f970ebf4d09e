package schema

// Config represents the config table of the structure store.
// The table holds exactly one row, seeded at provisioning time.
type Config struct {
	// BlockIteration is the number of blocks scanned per indexer iteration
	BlockIteration int `gorm:"column:blockIteration"`
	// SleepBetweenIteration is the pause between iterations in milliseconds
	SleepBetweenIteration int  `gorm:"column:sleepBetweenIteration"`
	NbrOfThreads          int  `gorm:"column:nbrOfThreads"`
	Paused                bool `gorm:"column:paused"`
	// LatestIndexedBlock is the transaction scan cursor
	LatestIndexedBlock int `gorm:"column:latestIndexedBlock"`
	// LatestIndexedEventBlock is the event scan cursor
	LatestIndexedEventBlock int `gorm:"column:latestIndexedEventBlock"`
}

func (Config) TableName() string {
	return "config"
}
