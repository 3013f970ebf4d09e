package schema

// Metadata represents the metadata table.
// Contract level metadata has a nil TokenID, token level metadata references a contract_token.
type Metadata struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement"`
	Address     string  `gorm:"column:address;not null;type:char(42)"`
	TokenID     *string `gorm:"column:tokenId;type:char(66)"`
	Name        *string `gorm:"column:name;type:varchar(256)"`
	Symbol      *string `gorm:"column:symbol;type:varchar(50)"`
	Description *string `gorm:"column:description;type:varchar(4096)"`
	IsNFT       *bool   `gorm:"column:isNFT"`
}

func (Metadata) TableName() string {
	return "metadata"
}

// MetadataImage represents the metadata_image table, unique on (metadataId, url)
type MetadataImage struct {
	MetadataID int     `gorm:"column:metadataId;not null"`
	URL        string  `gorm:"column:url;not null;type:varchar(2048)"`
	Width      int     `gorm:"column:width;not null;type:smallint"`
	Height     int     `gorm:"column:height;not null;type:smallint"`
	Type       *string `gorm:"column:type;type:varchar(40)"`
	Hash       string  `gorm:"column:hash;not null;type:char(66)"`
}

func (MetadataImage) TableName() string {
	return "metadata_image"
}

// MetadataLink represents the metadata_link table, unique on (metadataId, url)
type MetadataLink struct {
	MetadataID int    `gorm:"column:metadataId;not null"`
	Title      string `gorm:"column:title;not null;type:varchar(64)"`
	URL        string `gorm:"column:url;not null;type:varchar(2048)"`
}

func (MetadataLink) TableName() string {
	return "metadata_link"
}

// MetadataTag represents the metadata_tag table, unique on (metadataId, title)
type MetadataTag struct {
	MetadataID int    `gorm:"column:metadataId;not null"`
	Title      string `gorm:"column:title;not null;type:varchar(40)"`
}

func (MetadataTag) TableName() string {
	return "metadata_tag"
}

// MetadataAsset represents the metadata_asset table, unique on (metadataId, url)
type MetadataAsset struct {
	MetadataID int    `gorm:"column:metadataId;not null"`
	URL        string `gorm:"column:url;not null;type:varchar(2048)"`
	FileType   string `gorm:"column:fileType;not null;type:varchar(32)"`
	Hash       string `gorm:"column:hash;not null;type:char(66)"`
}

func (MetadataAsset) TableName() string {
	return "metadata_asset"
}
