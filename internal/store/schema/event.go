package schema

import "time"

// Event represents the event table - one decoded log entry
type Event struct {
	ID              string    `gorm:"column:id;primaryKey;type:char(66)"`
	BlockNumber     int       `gorm:"column:blockNumber;not null"`
	Date            time.Time `gorm:"column:date;not null;type:timestamptz"`
	TransactionHash string    `gorm:"column:transactionHash;not null;type:char(66)"`
	LogIndex        int       `gorm:"column:logIndex;not null"`
	Address         string    `gorm:"column:address;not null;type:char(42)"`
	EventName       *string   `gorm:"column:eventName;type:varchar(40)"`
	MethodID        string    `gorm:"column:methodId;not null;type:char(10)"`
	Topic0          string    `gorm:"column:topic0;not null;type:char(66)"`
	Topic1          *string   `gorm:"column:topic1;type:char(66)"`
	Topic2          *string   `gorm:"column:topic2;type:char(66)"`
	Topic3          *string   `gorm:"column:topic3;type:char(66)"`
	Data            *string   `gorm:"column:data;type:varchar(16384)"`
}

func (Event) TableName() string {
	return "event"
}

// EventParameter represents the event_parameter table, unique on (eventId, position)
type EventParameter struct {
	EventID  string `gorm:"column:eventId;not null;type:char(66)"`
	Value    string `gorm:"column:value;not null;type:varchar(512)"`
	Name     string `gorm:"column:name;not null;type:varchar(40)"`
	Type     string `gorm:"column:type;not null;type:varchar(20)"`
	Position int    `gorm:"column:position;not null;type:smallint"`
}

func (EventParameter) TableName() string {
	return "event_parameter"
}
